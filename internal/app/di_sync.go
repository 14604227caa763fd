package app

import (
	"fmt"

	syncRepository "github.com/lifelog-app/lifelog/internal/sync/repository"
	syncUseCase "github.com/lifelog-app/lifelog/internal/sync/usecase"
)

// ChangeRepository returns the change feed repository instance. The same
// instance also serves the journal and chat use cases as their change
// recorder, so every record mutation and its change row share a transaction.
func (c *Container) ChangeRepository() (syncUseCase.ChangeRepository, error) {
	var err error
	c.changeRepoInit.Do(func() {
		c.changeRepo, err = c.initChangeRepository()
		if err != nil {
			c.initErrors["changeRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["changeRepo"]; exists {
		return nil, storedErr
	}
	return c.changeRepo, nil
}

// SyncUseCase returns the sync use case instance.
func (c *Container) SyncUseCase() (syncUseCase.SyncUseCase, error) {
	var err error
	c.syncUseCaseInit.Do(func() {
		c.syncUseCase, err = c.initSyncUseCase()
		if err != nil {
			c.initErrors["syncUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["syncUseCase"]; exists {
		return nil, storedErr
	}
	return c.syncUseCase, nil
}

// initChangeRepository creates the change repository based on the database driver.
func (c *Container) initChangeRepository() (syncUseCase.ChangeRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for change repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return syncRepository.NewMySQLChangeRepository(db), nil
	case "postgres":
		return syncRepository.NewPostgreSQLChangeRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSyncUseCase creates the sync use case with all its dependencies.
func (c *Container) initSyncUseCase() (syncUseCase.SyncUseCase, error) {
	changeRepo, err := c.ChangeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get change repository for sync use case: %w", err)
	}

	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry repository for sync use case: %w", err)
	}

	messageRepo, err := c.MessageRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get message repository for sync use case: %w", err)
	}

	sealer, err := c.Sealer()
	if err != nil {
		return nil, fmt.Errorf("failed to get sealer for sync use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for sync use case: %w", err)
	}

	useCase := syncUseCase.NewSyncUseCase(
		changeRepo,
		entryRepo,
		messageRepo,
		sealer,
		c.Logger(),
		c.config.SyncMaxBatchSize,
		c.config.SyncUnsealWorkers,
	)
	return syncUseCase.NewSyncUseCaseWithMetrics(useCase, businessMetrics), nil
}
