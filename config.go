package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the FoodChef server.
type Config struct {
	Port                    string // Service port (default: 5000)
	Env                     string // "production" or anything else for dev
	MongoURI                string // Document store connection string
	MongoDB                 string // Database name (default: foodchefDB)
	StripeSecretKey         string // Payment gateway secret
	FirebaseCredentialsFile string // Service-account key file path
	FirebaseCredentialsJSON string // Or the key JSON inline
}

// LoadConfig loads environment variables into a Config struct and validates
// the required ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                    os.Getenv("PORT"),
		Env:                     os.Getenv("APP_ENV"),
		MongoURI:                os.Getenv("MONGODB_URI"),
		MongoDB:                 os.Getenv("MONGODB_DB"),
		StripeSecretKey:         os.Getenv("STRIPE_SECRET_KEY"),
		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "foodchefDB"
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if cfg.FirebaseCredentialsFile == "" && cfg.FirebaseCredentialsJSON == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_FILE or FIREBASE_CREDENTIALS_JSON is required")
	}

	return cfg, nil
}
