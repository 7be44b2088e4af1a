package firebase

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/foodgram/backend/pkg/logger"
	"google.golang.org/api/option"
)

// App bundles the Firebase project whose ID tokens the API accepts as an
// alternative to its own JWTs.
type App struct {
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
	ProjectID   string
}

// InitFirebase builds the auth client used to verify Firebase ID tokens.
// An empty projectID lets the SDK take it from the service account file.
func InitFirebase(ctx context.Context, credentialsPath, projectID string) (*App, error) {
	if err := checkCredentials(credentialsPath); err != nil {
		return nil, err
	}

	fbApp, err := firebase.NewApp(ctx, appConfig(projectID), option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	project := projectID
	if project == "" {
		project = "from credentials"
	}
	log := logger.WithComponent("firebase")
	log.Info().
		Str("project_id", project).
		Str("credentials", credentialsPath).
		Msg("Firebase token verification enabled")

	return &App{FirebaseApp: fbApp, AuthClient: authClient, ProjectID: projectID}, nil
}

func checkCredentials(path string) error {
	if path == "" {
		return fmt.Errorf("firebase credentials path not provided")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found at %s", path)
	}
	if err != nil {
		return fmt.Errorf("stat firebase credentials: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("firebase credentials path %s is a directory", path)
	}
	return nil
}

func appConfig(projectID string) *firebase.Config {
	if projectID == "" {
		return nil
	}
	return &firebase.Config{ProjectID: projectID}
}
