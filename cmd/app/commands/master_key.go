package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
)

// RunCreateMasterKey generates a cryptographically secure 32-byte master key.
//
// Without a KMS key URI the key is printed hex-encoded, ready to be set as
// LIFELOG_MASTER_KEY. With a KMS key URI the key is wrapped by the KMS first
// and printed as base64 ciphertext together with the KMS_KEY_URI line the
// server needs to unwrap it. Key material is zeroed after encoding and is
// never logged.
func RunCreateMasterKey(
	ctx context.Context,
	kms cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	masterKey := make([]byte, cryptoDomain.MasterKeySize)
	if _, err := rand.Read(masterKey); err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	defer cryptoDomain.Zero(masterKey)

	if kmsKeyURI == "" {
		logger.Info("generated master key in plain hex mode")

		_, _ = fmt.Fprintln(writer, "# Master key configuration")
		_, _ = fmt.Fprintln(writer, "# Copy this environment variable to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "%s=\"%s\"\n", cryptoDomain.MasterKeyEnvVar, hex.EncodeToString(masterKey))
		return nil
	}

	keeper, err := kms.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Error("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, masterKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt master key with KMS: %w", err)
	}

	logger.Info("generated master key in KMS mode")

	_, _ = fmt.Fprintln(writer, "# Master key configuration (KMS mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "%s=\"%s\"\n", cryptoDomain.MasterKeyEnvVar, base64.StdEncoding.EncodeToString(ciphertext))
	return nil
}

// RunCheckMasterKey validates the configured master key without starting the
// server. It exercises the same loading path the server uses, so a passing
// check means the server will accept the key.
func RunCheckMasterKey(
	ctx context.Context,
	kms cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	if kmsKeyURI == "" {
		if !cryptoDomain.ValidateMasterKeyOnStartup(logger) {
			return fmt.Errorf("master key validation failed")
		}
		_, _ = fmt.Fprintln(writer, "master key is valid")
		return nil
	}

	masterKey, err := cryptoService.LoadMasterKeyFromKMS(ctx, kms, kmsKeyURI)
	if err != nil {
		logger.Error("master key validation failed", slog.Any("error", err))
		return fmt.Errorf("master key validation failed: %w", err)
	}
	masterKey.Close()

	_, _ = fmt.Fprintln(writer, "master key is valid (KMS mode)")
	return nil
}
