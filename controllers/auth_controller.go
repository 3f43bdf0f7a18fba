package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"streamhub/config"
	"streamhub/structs"
	"streamhub/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/gin-gonic/gin"
)

func SignUp(ctx *gin.Context) {
	cfg := loadConfig(ctx)
	if cfg == nil {
		return
	}

	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	err := signUpWithCognito(cfg, request.Email, request.Password, ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-up successful"})
}

func VerifyEmail(ctx *gin.Context) {
	cfg := loadConfig(ctx)
	if cfg == nil {
		return
	}

	var request structs.VerifyEmailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	err := verifyEmailWithCognito(cfg, request.Email, request.ConfirmationCode, ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Email verification successful"})
}

func Login(ctx *gin.Context) {
	cfg := loadConfig(ctx)
	if cfg == nil {
		return
	}

	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	if err := loginWithCognito(cfg, request.Email, request.Password, ctx); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to sign in", "message": "Invalid email or password"})
		return
	}

	// Bootstrap the platform user document on first login
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	user, err := utils.EnsureUserDocument(dbCtx, request.Email)
	if err != nil {
		log.Printf("Failed to ensure user document for %s: %v", request.Email, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize account"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), request.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-in successful", "accessToken": token})
}

func ForgotPassword(ctx *gin.Context) {
	cfg := loadConfig(ctx)
	if cfg == nil {
		return
	}

	var request structs.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email format"})
		return
	}

	if err := initiateForgotPassword(cfg, request.Email, ctx); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset initiated. Check your email for further instructions."})
}

func VerifyForgotPassword(ctx *gin.Context) {
	cfg := loadConfig(ctx)
	if cfg == nil {
		return
	}

	var request structs.VerifyForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if err := confirmForgotPassword(cfg, request.Email, request.Code, request.NewPassword, ctx); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm password reset", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password successfully changed"})
}

func VerifyToken(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token format"})
		return
	}

	valid, _, err := utils.ValidateTokenAndFetchEmail(tokenParts[1])
	if err != nil || !valid {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Token is valid"})
}

func loadConfig(ctx *gin.Context) *config.Config {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.prod.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Println("Failed to load config")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil
	}
	return cfg
}

func cognitoClient(cfg *config.Config, ctx context.Context) (*cognitoidentityprovider.Client, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Cognito.Region))
	if err != nil {
		log.Println("Error loading AWS config:", err)
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return cognitoidentityprovider.NewFromConfig(awsCfg), nil
}

func signUpWithCognito(cfg *config.Config, email, password string, ctx *gin.Context) error {
	client, err := cognitoClient(cfg, ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cfg.Cognito.AppClientId, cfg.Cognito.AppClientSecret)

	input := cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(cfg.Cognito.AppClientId),
		Password:   aws.String(password),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(email),
			},
			{
				Name:  aws.String("nickname"),
				Value: aws.String(utils.ExtractNameFromEmail(email)),
			},
		},
	}

	if _, err := client.SignUp(ctx, &input); err != nil {
		log.Println("Error during sign-up:", err)
		return fmt.Errorf("sign-up failed: %v", err)
	}
	return nil
}

func verifyEmailWithCognito(cfg *config.Config, email, confirmationCode string, ctx *gin.Context) error {
	client, err := cognitoClient(cfg, ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cfg.Cognito.AppClientId, cfg.Cognito.AppClientSecret)

	input := cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(cfg.Cognito.AppClientId),
		ConfirmationCode: aws.String(confirmationCode),
		SecretHash:       aws.String(secretHash),
		Username:         aws.String(email),
	}

	if _, err := client.ConfirmSignUp(ctx, &input); err != nil {
		log.Println("Error during email verification:", err)
		return fmt.Errorf("email verification failed: %v", err)
	}
	return nil
}

func loginWithCognito(cfg *config.Config, email, password string, ctx *gin.Context) error {
	client, err := cognitoClient(cfg, ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cfg.Cognito.AppClientId, cfg.Cognito.AppClientSecret)

	input := cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(cfg.Cognito.AppClientId),
		AuthParameters: map[string]string{
			"USERNAME":    email,
			"PASSWORD":    password,
			"SECRET_HASH": secretHash,
		},
	}

	if _, err := client.InitiateAuth(ctx, &input); err != nil {
		log.Println("Error during sign-in:", err)
		return fmt.Errorf("sign-in failed: %v", err)
	}
	return nil
}

func initiateForgotPassword(cfg *config.Config, email string, ctx *gin.Context) error {
	client, err := cognitoClient(cfg, ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cfg.Cognito.AppClientId, cfg.Cognito.AppClientSecret)

	input := cognitoidentityprovider.ForgotPasswordInput{
		ClientId:   aws.String(cfg.Cognito.AppClientId),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(email),
	}

	if _, err := client.ForgotPassword(ctx, &input); err != nil {
		log.Println("Error initiating password reset:", err)
		return fmt.Errorf("password reset failed: %v", err)
	}
	return nil
}

func confirmForgotPassword(cfg *config.Config, email, code, newPassword string, ctx *gin.Context) error {
	client, err := cognitoClient(cfg, ctx)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, cfg.Cognito.AppClientId, cfg.Cognito.AppClientSecret)

	input := cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(cfg.Cognito.AppClientId),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       aws.String(secretHash),
		Username:         aws.String(email),
	}

	if _, err := client.ConfirmForgotPassword(ctx, &input); err != nil {
		log.Println("Error confirming password reset:", err)
		return fmt.Errorf("password reset confirmation failed: %v", err)
	}
	return nil
}
