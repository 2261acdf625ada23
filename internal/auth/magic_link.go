package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	sharedauth "resume-tailor/internal/shared/auth"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/internal/users"
)

// Messages shown next to the email field.
const (
	MsgEmailRequired = "Please enter your email address"
	MsgEmailInvalid  = "Please enter a valid email address"
	MsgLinkSent      = "Magic link sent! Check your inbox and spam folder."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrLinkUsed is returned when a sign-in link is replayed.
var ErrLinkUsed = errors.New("sign-in link already used")

// EmailError rejects the submitted address with a form message.
type EmailError struct {
	Message string
}

func (e *EmailError) Error() string { return e.Message }

// Mailer delivers sign-in links.
type Mailer interface {
	SendMagicLink(ctx context.Context, email, link string) error
}

// LogMailer writes the link to the log instead of sending mail.
type LogMailer struct{}

// SendMagicLink logs the link.
func (LogMailer) SendMagicLink(ctx context.Context, email, link string) error {
	telemetry.Info("auth.magic_link", map[string]any{
		"email": email,
		"link":  link,
	})
	return nil
}

// UserStore records sign-ins.
type UserStore interface {
	RecordLogin(ctx context.Context, email string) (users.User, error)
	GetByID(ctx context.Context, userID string) (users.User, error)
}

// CurrentUser loads the signed-in user's account.
func (s *Service) CurrentUser(ctx context.Context, userID string) (users.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Options configures the sign-in flow.
type Options struct {
	BaseURL      string
	LinkTTL      time.Duration
	SessionTTL   time.Duration
	CookieSecure bool
}

// Service issues and redeems passwordless sign-in links.
type Service struct {
	issuer   *sharedauth.Issuer
	users    UserStore
	mailer   Mailer
	opts     Options
	used     *usedLinks
	validate *validator.Validate
}

// NewService builds a Service.
func NewService(issuer *sharedauth.Issuer, userStore UserStore, mailer Mailer, opts Options) *Service {
	if mailer == nil {
		mailer = LogMailer{}
	}
	if opts.LinkTTL <= 0 {
		opts.LinkTTL = 15 * time.Minute
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 7 * 24 * time.Hour
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Service{
		issuer:   issuer,
		users:    userStore,
		mailer:   mailer,
		opts:     opts,
		used:     newUsedLinks(),
		validate: validator.New(),
	}
}

// NormalizeEmail trims, checks and lower-cases an address.
func (s *Service) NormalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", &EmailError{Message: MsgEmailRequired}
	}
	if !emailPattern.MatchString(email) || s.validate.Var(email, "required,email") != nil {
		return "", &EmailError{Message: MsgEmailInvalid}
	}
	return strings.ToLower(email), nil
}

// SendLink mails a single-use sign-in link to email.
func (s *Service) SendLink(ctx context.Context, rawEmail string) error {
	email, err := s.NormalizeEmail(rawEmail)
	if err != nil {
		return err
	}
	token, _, err := s.issuer.Sign(sharedauth.PurposeMagicLink, "", email, s.opts.LinkTTL)
	if err != nil {
		return err
	}
	link := s.opts.BaseURL + "/auth/callback?token=" + url.QueryEscape(token)
	if err := s.mailer.SendMagicLink(ctx, email, link); err != nil {
		return fmt.Errorf("send magic link: %w", err)
	}
	metrics.IncMagicLinkSent()
	return nil
}

// Redeem verifies a sign-in link, records the login and returns a session
// token. Each link works once.
func (s *Service) Redeem(ctx context.Context, token string) (string, users.User, error) {
	claims, err := s.issuer.Verify(token, sharedauth.PurposeMagicLink)
	if err != nil {
		return "", users.User{}, err
	}
	if !s.used.consume(claims.ID, claims.ExpiresAt.Time) {
		return "", users.User{}, ErrLinkUsed
	}
	user, err := s.users.RecordLogin(ctx, claims.Email)
	if err != nil {
		s.used.release(claims.ID)
		return "", users.User{}, fmt.Errorf("record login: %w", err)
	}
	session, _, err := s.issuer.Sign(sharedauth.PurposeSession, user.ID, user.Email, s.opts.SessionTTL)
	if err != nil {
		s.used.release(claims.ID)
		return "", users.User{}, err
	}
	return session, user, nil
}

// usedLinks remembers redeemed link IDs until they would have expired anyway.
type usedLinks struct {
	mu    sync.Mutex
	items map[string]time.Time
	now   func() time.Time
}

func newUsedLinks() *usedLinks {
	return &usedLinks{items: make(map[string]time.Time), now: time.Now}
}

// consume marks id as used and reports whether it was fresh.
func (u *usedLinks) consume(id string, exp time.Time) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	now := u.now()
	for k, e := range u.items {
		if now.After(e) {
			delete(u.items, k)
		}
	}
	if _, ok := u.items[id]; ok {
		return false
	}
	u.items[id] = exp
	return true
}

// release forgets id so a link whose redemption failed can be retried.
func (u *usedLinks) release(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.items, id)
}
