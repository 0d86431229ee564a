package server

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// subscription is an in-memory newsletter signup awaiting verification.
type subscription struct {
	ID                int       `json:"id"`
	Email             string    `json:"email"`
	Categories        []string  `json:"categories"`
	VerificationToken string    `json:"-"`
	TokenExpires      time.Time `json:"-"`
	IsActive          bool      `json:"isActive"`
	IsVerified        bool      `json:"isVerified"`
	SubscribedAt      time.Time `json:"subscribedAt"`
}

type subscriptionStore struct {
	mu   sync.Mutex
	byID map[string]subscription
	next int
}

func newSubscriptionStore() *subscriptionStore {
	return &subscriptionStore{byID: make(map[string]subscription), next: 1}
}

type createSubscriptionRequest struct {
	Email      string   `json:"email"`
	Categories []string `json:"categories"`
}

func (s *Server) handleCreateSubscription(c echo.Context) error {
	var req createSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return fail(c, http.StatusBadRequest, "A valid email address is required")
	}

	s.subscriptions.mu.Lock()
	defer s.subscriptions.mu.Unlock()

	if _, exists := s.subscriptions.byID[email]; exists {
		return fail(c, http.StatusBadRequest, "Email is already subscribed")
	}

	sub := subscription{
		ID:                s.subscriptions.next,
		Email:             email,
		Categories:        req.Categories,
		VerificationToken: uuid.NewString(),
		TokenExpires:      time.Now().Add(24 * time.Hour),
		SubscribedAt:      time.Now(),
	}
	s.subscriptions.next++
	s.subscriptions.byID[email] = sub

	s.logger.Info("subscription created", "email", email)

	return c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "Subscription created successfully. Please check your email to verify.",
		Data: map[string]any{
			"email":             sub.Email,
			"categories":        sub.Categories,
			"needsVerification": true,
		},
	})
}

func (s *Server) handleGetSubscription(c echo.Context) error {
	email := strings.ToLower(c.Param("email"))

	s.subscriptions.mu.Lock()
	sub, exists := s.subscriptions.byID[email]
	s.subscriptions.mu.Unlock()

	if !exists {
		return fail(c, http.StatusNotFound, "Subscription not found")
	}
	return ok(c, sub)
}

func (s *Server) handleDeleteSubscription(c echo.Context) error {
	email := strings.ToLower(c.Param("email"))

	s.subscriptions.mu.Lock()
	_, exists := s.subscriptions.byID[email]
	delete(s.subscriptions.byID, email)
	s.subscriptions.mu.Unlock()

	if !exists {
		return fail(c, http.StatusNotFound, "Subscription not found")
	}

	s.logger.Info("subscription removed", "email", email)
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "Unsubscribed successfully"})
}
