package consts

import "time"

// DefaultBaseURL is the remote bulletin-board API.
const DefaultBaseURL = "https://fe-hiring-rest-api.vercel.app"

// DefaultTimeout is the fixed per-request transport timeout.
const DefaultTimeout = 10 * time.Second

// LoginPath is the login entry point of the application.
const LoginPath = "/login"

// Post limits
const (
	MaxTitleLength = 80
	MaxBodyLength  = 2000
	MaxTags        = 5
	MaxTagLength   = 24
)

// DefaultPageLimit is the default list page size.
const DefaultPageLimit = 10

// ForbiddenWords is the denylist, matched case-insensitively as substrings.
// Order matters: the first match is reported.
var ForbiddenWords = []string{"캄보디아", "프놈펜", "불법체류", "텔레그램"}

// CategoryLabels display names per category.
var CategoryLabels = map[string]string{
	"NOTICE": "공지사항",
	"QNA":    "질문답변",
	"FREE":   "자유게시판",
}

// Default login credentials documented by the API.
const (
	DefaultEmail    = "alice@example.com"
	DefaultPassword = "alice1234"
)
