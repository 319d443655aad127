package mockserver

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kyunghoonkook/directional/consts"
	"github.com/kyunghoonkook/directional/logging/logger"
	"github.com/kyunghoonkook/directional/resp"
	"github.com/kyunghoonkook/directional/types"
	"github.com/sirupsen/logrus"
)

// Account a login the server accepts
type Account struct {
	User     types.User
	Password string
}

// Options mock server settings
type Options struct {
	Seed     bool             // load the sample posts
	Accounts []Account        // nil uses DefaultAccounts
	TokenTTL time.Duration    // lifetime of issued tokens
	Now      func() time.Time // clock, time.Now when nil
	Secret   []byte           // token signing key
	Mode     string           // gin mode, release when empty
}

// Server in-memory implementation of the board REST api
type Server struct {
	mu       sync.RWMutex
	posts    []types.Post
	tokens   map[string]types.User
	accounts map[string]Account
	ttl      time.Duration
	now      func() time.Time
	secret   []byte
	engine   *gin.Engine
}

// New creates a server and its gin engine
func New(opts *Options) *Server {
	if opts == nil {
		opts = &Options{Seed: true}
	}
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		tokens:   make(map[string]types.User),
		accounts: make(map[string]Account),
		ttl:      opts.TokenTTL,
		now:      opts.Now,
		secret:   opts.Secret,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.ttl <= 0 {
		s.ttl = 24 * time.Hour
	}
	if len(s.secret) == 0 {
		s.secret = []byte("directional-mock")
	}
	accounts := opts.Accounts
	if accounts == nil {
		accounts = DefaultAccounts()
	}
	for _, a := range accounts {
		s.accounts[strings.ToLower(a.User.Email)] = a
	}
	if opts.Seed {
		s.posts = seedPosts(accounts, s.now())
	}
	s.engine = s.newEngine()
	return s
}

// Engine returns the gin engine serving the api
func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware())

	r.GET("/health", func(c *gin.Context) {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
	})
	r.POST("/auth/login", s.login)

	posts := r.Group("/posts", s.authMiddleware())
	posts.GET("", s.listPosts)
	posts.POST("", s.createPost)
	posts.DELETE("", s.deleteAllPosts)
	posts.GET("/:id", s.getPost)
	posts.PATCH("/:id", s.updatePost)
	posts.DELETE("/:id", s.deletePost)

	mock := r.Group("/mock")
	mock.GET("/coffee-consumption", func(c *gin.Context) { resp.Success(c.Writer, coffeeConsumption()) })
	mock.GET("/weekly-mood-trend", func(c *gin.Context) { resp.Success(c.Writer, weeklyMoodTrend()) })
	mock.GET("/top-coffee-brands", func(c *gin.Context) { resp.Success(c.Writer, topCoffeeBrands()) })

	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound("route not found"))
	})
	return r
}

// authMiddleware resolves the bearer token to a user
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(consts.AuthorizationKey)
		if !strings.HasPrefix(header, consts.BearerKey) {
			resp.Fail(c.Writer, resp.UnAuthorized("missing authorization header"))
			c.Abort()
			return
		}
		user, ok := s.userForToken(strings.TrimPrefix(header, consts.BearerKey))
		if !ok {
			resp.Fail(c.Writer, resp.UnAuthorized("invalid or expired token"))
			c.Abort()
			return
		}
		c.Set(consts.UserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) types.User {
	v, _ := c.Get(consts.UserKey)
	user, _ := v.(types.User)
	return user
}

// loggerMiddleware logs each request at debug level
func loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.EntryWithFields(c.Request.Context(), logrus.Fields{
			"method":     method,
			"path":       path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"request_id": c.GetHeader(consts.RequestIDKey),
		}).Debug("mock request")
	}
}
