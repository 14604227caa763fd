package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/lifelog-app/lifelog/internal/crypto/domain"
	cryptoService "github.com/lifelog-app/lifelog/internal/crypto/service"
)

// MasterKey returns the master key loaded from the environment, unwrapping it
// through the configured KMS when a key URI is set.
func (c *Container) MasterKey() (*cryptoDomain.MasterKey, error) {
	var err error
	c.masterKeyInit.Do(func() {
		c.masterKey, err = c.initMasterKey()
		if err != nil {
			c.initErrors["masterKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterKey"]; exists {
		return nil, storedErr
	}
	return c.masterKey, nil
}

// Sealer returns the sealed-envelope service bound to the master key.
func (c *Container) Sealer() (cryptoService.Sealer, error) {
	var err error
	c.sealerInit.Do(func() {
		c.sealer, err = c.initSealer()
		if err != nil {
			c.initErrors["sealer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sealer"]; exists {
		return nil, storedErr
	}
	return c.sealer, nil
}

// KMSService returns the KMS service used to unwrap KMS-wrapped master keys.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// initMasterKey loads the master key with fail-fast validation. Startup
// aborts on any key misconfiguration; there is no fallback mode.
func (c *Container) initMasterKey() (*cryptoDomain.MasterKey, error) {
	if c.config.KMSKeyURI != "" {
		masterKey, err := cryptoService.LoadMasterKeyFromKMS(
			context.Background(),
			c.KMSService(),
			c.config.KMSKeyURI,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load KMS-wrapped master key: %w", err)
		}
		return masterKey, nil
	}

	masterKey, err := cryptoDomain.LoadMasterKeyFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load master key: %w", err)
	}
	return masterKey, nil
}

// initSealer creates the sealer bound to the loaded master key.
func (c *Container) initSealer() (cryptoService.Sealer, error) {
	masterKey, err := c.MasterKey()
	if err != nil {
		return nil, err
	}

	sealer, err := cryptoService.NewSealer(masterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create sealer: %w", err)
	}
	return sealer, nil
}
