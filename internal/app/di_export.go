package app

import (
	"fmt"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
	exportUseCase "github.com/lifelog-app/lifelog/internal/export/usecase"
)

// ExportUseCase returns the export use case instance.
func (c *Container) ExportUseCase() (exportUseCase.ExportUseCase, error) {
	var err error
	c.exportUseCaseInit.Do(func() {
		c.exportUseCase, err = c.initExportUseCase()
		if err != nil {
			c.initErrors["exportUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["exportUseCase"]; exists {
		return nil, storedErr
	}
	return c.exportUseCase, nil
}

// initExportUseCase creates the export use case with all its dependencies.
// The export cipher uses a subkey derived from the master key, so export
// blobs and storage envelopes never share a key.
func (c *Container) initExportUseCase() (exportUseCase.ExportUseCase, error) {
	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry repository for export use case: %w", err)
	}

	messageRepo, err := c.MessageRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get message repository for export use case: %w", err)
	}

	sealer, err := c.Sealer()
	if err != nil {
		return nil, fmt.Errorf("failed to get sealer for export use case: %w", err)
	}

	masterKey, err := c.MasterKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key for export use case: %w", err)
	}

	exportKey, err := cryptoService.DeriveKey(masterKey, cryptoService.ExportKeyInfo)
	if err != nil {
		return nil, fmt.Errorf("failed to derive export key: %w", err)
	}
	defer cryptoDomain.Zero(exportKey)

	cipher, err := cryptoService.NewXChaCha20Poly1305(exportKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create export cipher: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for export use case: %w", err)
	}

	useCase := exportUseCase.NewExportUseCase(entryRepo, messageRepo, sealer, cipher, c.Logger())
	return exportUseCase.NewExportUseCaseWithMetrics(useCase, businessMetrics), nil
}
