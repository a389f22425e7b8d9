package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	config "github.com/Mysterious135/delivery-app/configs"
	"github.com/Mysterious135/delivery-app/internal/db"
	"github.com/Mysterious135/delivery-app/internal/models"
)

// ContextUserKey is where RequireAuth stores the authenticated user's id.
const ContextUserKey = "user_id"

var errInvalidToken = errors.New("invalid token")

// Service issues and verifies bearer tokens and owns the credential store.
// The signing secret and token lifetime come from the injected config, never
// from ambient environment reads in request paths.
type Service struct {
	cfg config.AppConfig
}

func New(cfg config.AppConfig) *Service {
	return &Service{cfg: cfg}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenClaims struct {
	User struct {
		ID uint `json:"id"`
	} `json:"user"`
	jwt.RegisteredClaims
}

// ─────────────────────────────────────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────────────────────────────────────

// POST /api/auth/register
func (s *Service) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use."})
			return
		}
		log.Printf("register: create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	// The hash stays out of every response.
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

// POST /api/auth/login
//
// Unknown email and wrong password produce the same response so accounts
// cannot be enumerated.
func (s *Service) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials."})
			return
		}
		log.Printf("login: lookup user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials."})
		return
	}

	token, err := s.signToken(user.ID, time.Now())
	if err != nil {
		log.Printf("login: sign token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RequireAuth gates protected routes. It never touches the database and
// aborts before the handler runs, so a rejected request has no side effects.
func (s *Service) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		const prefix = "Bearer "

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		userID, err := s.VerifyToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

func (s *Service) signToken(userID uint, now time.Time) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	claims.User.ID = userID

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken parses and validates a bearer token and returns the user id it
// carries. Malformed, expired, or foreign-signed tokens all fail.
func (s *Service) VerifyToken(raw string) (uint, error) {
	var claims tokenClaims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errInvalidToken
	}
	if claims.User.ID == 0 {
		return 0, errInvalidToken
	}

	return claims.User.ID, nil
}
