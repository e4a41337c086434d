package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bnema/terabox-cookie-cli/internal/application"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type accountSummary struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

type addAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func errorBody(message string) gin.H {
	return gin.H{"status": statusError, "message": message}
}

func (s *Server) handleRegenerate(c *gin.Context) {
	raw := c.Query("number")
	if raw == "" {
		c.JSON(http.StatusBadRequest, errorBody("account number is required"))
		return
	}
	number, err := domain.ParseAccountNumber(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	// Concurrent requests for the same account share one browser run, which
	// must outlive the first caller's connection.
	value, err, shared := s.flights.Do(strconv.Itoa(number), func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), s.opts.RegenerateTimeout)
		defer cancel()
		return s.regen.Regenerate(ctx, number)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, errorBody(fmt.Sprintf("account %d not found", number)))
			return
		}
		_ = c.Error(err)
		s.logger.Error("regenerate cookies", zap.Int("number", number), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	result := value.(domain.Regeneration)
	c.JSON(http.StatusOK, gin.H{
		"status":       statusSuccess,
		"account_name": result.Name,
		"cookie":       result.Cookie,
		"forwarded":    result.Forwarded,
		"shared":       shared,
		"message":      "Cookies regenerated",
	})
}

func (s *Server) handleAddAccountQuery(c *gin.Context) {
	account, err := s.accounts.AddAccount(c.Request.Context(), application.AddAccountCommand{
		Email:    c.Query("email"),
		Password: c.Query("password"),
		Naming:   application.NamingNumber,
	})
	if err != nil {
		s.writeAddError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":         statusSuccess,
		"message":        "Account added",
		"account_number": account.Number,
		"name":           account.Name,
	})
}

func (s *Server) handleAddAccountJSON(c *gin.Context) {
	var req addAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid json body"))
		return
	}

	account, err := s.accounts.AddAccount(c.Request.Context(), application.AddAccountCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Naming:   application.NamingDefault,
	})
	if err != nil {
		s.writeAddError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":         statusSuccess,
		"message":        "Account added",
		"account_number": account.Number,
		"name":           account.Name,
	})
}

func (s *Server) writeAddError(c *gin.Context, err error) {
	if errors.Is(err, application.ErrMissingCredentials) {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
}

func (s *Server) handleListAccounts(c *gin.Context) {
	accounts, err := s.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	summaries := make([]accountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, accountSummary{Number: account.Number, Name: account.DisplayName()})
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "accounts": summaries})
}

func (s *Server) handleCookies(c *gin.Context) {
	cookies, err := s.accounts.Cookies(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoCookiesStored) {
			c.JSON(http.StatusNotFound, errorBody("no cookies stored yet"))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "cookies": cookies})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
