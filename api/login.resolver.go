package api

import (
	"fmt"
	"time"

	googleauth "portfoliolab/pkg/google-auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type loginRequest struct {
	GoogleAccessToken string `json:"googleAccessToken"`
}

type loginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// login exchanges a Google access token for an api token. User ids are
// derived from the verified email, so the same account always maps to the
// same saved portfolios without a user table.
func (m ApiHandler) login(c *gin.Context) {
	var requestBody loginRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.GoogleAccessToken == "" {
		returnErrorJsonCode(fmt.Errorf("googleAccessToken is required"), c, 400)
		return
	}

	details, err := googleauth.GetUserDetails(requestBody.GoogleAccessToken)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to verify google token: %w", err), c, 401)
		return
	}
	if !details.EmailVerified {
		returnErrorJsonCode(fmt.Errorf("email %s is not verified", details.Email), c, 401)
		return
	}

	userID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(details.Email))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(m.JwtSecret))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to sign token: %w", err), c)
		return
	}

	c.JSON(200, loginResponse{
		Token:     signed,
		Email:     details.Email,
		FirstName: details.FirstName,
	})
}
