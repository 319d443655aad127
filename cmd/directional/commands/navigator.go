package commands

import (
	"fmt"
	"io"
	"sync"
)

// navigator maps session navigation onto the terminal. The location is the
// route the running command stands for, e.g. /posts.
type navigator struct {
	mu        sync.Mutex
	w         io.Writer
	location  string
	loginPath string
}

func newNavigator(w io.Writer, location, loginPath string) *navigator {
	return &navigator{w: w, location: location, loginPath: loginPath}
}

func (n *navigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *navigator) Navigate(path string) {
	n.mu.Lock()
	n.location = path
	n.mu.Unlock()
	if path == n.loginPath {
		fmt.Fprintln(n.w, "session expired, run `directional login`")
	}
}
