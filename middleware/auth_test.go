package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"little-lemon/models"
	"little-lemon/utils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateToken(1, "maria")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", AuthMiddleware(), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireGroup(t *testing.T) {
	tests := []struct {
		name        string
		checker     GroupChecker
		wantStatus  int
		wantReached bool
	}{
		{
			name: "member is allowed through",
			checker: func(ctx context.Context, userID int, group string) (bool, error) {
				return true, nil
			},
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name: "non-member is forbidden",
			checker: func(ctx context.Context, userID int, group string) (bool, error) {
				return false, nil
			},
			wantStatus:  http.StatusForbidden,
			wantReached: false,
		},
		{
			name: "lookup failure aborts",
			checker: func(ctx context.Context, userID int, group string) (bool, error) {
				return false, errors.New("store down")
			},
			wantStatus:  http.StatusInternalServerError,
			wantReached: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false

			router := gin.New()
			router.POST("/protected",
				func(c *gin.Context) { c.Set("user_id", 1) },
				RequireGroup(tt.checker, models.GroupManager),
				func(c *gin.Context) {
					reached = true
					c.JSON(http.StatusOK, gin.H{"success": true})
				})

			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if reached != tt.wantReached {
				t.Errorf("handler reached = %v, want %v", reached, tt.wantReached)
			}
		})
	}
}
