// Package noop provides the null-object advisor used when no external
// advisor is configured. It makes the fallback paths the only paths.
package noop

import (
	"context"
	"fmt"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// Client implements domain.Advisor and is never available.
type Client struct{}

// New constructs the null advisor.
func New() Client { return Client{} }

// Available always reports false.
func (Client) Available() bool { return false }

// Advise always fails; callers checking Available first never reach it.
func (Client) Advise(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("%w: no advisor configured", domain.ErrAdvisorUnavailable)
}
