package docstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"lucky-draw/internal/pkg/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// Project used against the emulator when nothing else names one.
const emulatorProjectID = "demo-lucky-draw"

type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

// DecodeServiceAccount turns the base64 env value into the raw credentials
// JSON and the fields needed to open a client.
func DecodeServiceAccount(encoded string) ([]byte, *ServiceAccount, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, nil, fmt.Errorf("service account is not valid base64: %w", err)
	}

	var sa ServiceAccount
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, nil, fmt.Errorf("service account is not valid JSON: %w", err)
	}
	return raw, &sa, nil
}

func NewClient(ctx context.Context, cfg config.FirestoreConfig) (*firestore.Client, func(), error) {
	projectID := cfg.ProjectID
	var opts []option.ClientOption

	if cfg.CredentialsBase64 != "" {
		raw, sa, err := DecodeServiceAccount(cfg.CredentialsBase64)
		if err != nil {
			return nil, nil, err
		}
		if projectID == "" {
			projectID = sa.ProjectID
		}
		// The SDK talks to FIRESTORE_EMULATOR_HOST on its own and ignores credentials there.
		if cfg.EmulatorHost == "" {
			opts = append(opts, option.WithCredentialsJSON(raw))
		}
	}

	if projectID == "" {
		if cfg.EmulatorHost == "" {
			return nil, nil, fmt.Errorf("firestore project id is unknown: set FIREBASE_PROJECT_ID or include project_id in the service account")
		}
		projectID = emulatorProjectID
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	slog.Info("firestore client ready",
		"project_id", projectID,
		"emulator", cfg.EmulatorHost != "")

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close firestore client", "error", err.Error())
			return
		}
		slog.Info("firestore client closed")
	}
	return client, cleanup, nil
}
