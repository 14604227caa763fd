package app

import (
	"fmt"

	journalRepository "github.com/lifelog-app/lifelog/internal/journal/repository"
	journalUseCase "github.com/lifelog-app/lifelog/internal/journal/usecase"
)

// EntryRepository returns the journal entry repository instance.
func (c *Container) EntryRepository() (journalUseCase.EntryRepository, error) {
	var err error
	c.entryRepoInit.Do(func() {
		c.entryRepo, err = c.initEntryRepository()
		if err != nil {
			c.initErrors["entryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryRepo"]; exists {
		return nil, storedErr
	}
	return c.entryRepo, nil
}

// EntryUseCase returns the journal entry use case instance.
func (c *Container) EntryUseCase() (journalUseCase.EntryUseCase, error) {
	var err error
	c.entryUseCaseInit.Do(func() {
		c.entryUseCase, err = c.initEntryUseCase()
		if err != nil {
			c.initErrors["entryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryUseCase"]; exists {
		return nil, storedErr
	}
	return c.entryUseCase, nil
}

// initEntryRepository creates the entry repository based on the database driver.
func (c *Container) initEntryRepository() (journalUseCase.EntryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for entry repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return journalRepository.NewMySQLEntryRepository(db), nil
	case "postgres":
		return journalRepository.NewPostgreSQLEntryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initEntryUseCase creates the entry use case with all its dependencies.
func (c *Container) initEntryUseCase() (journalUseCase.EntryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for entry use case: %w", err)
	}

	entryRepo, err := c.EntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry repository for entry use case: %w", err)
	}

	changeRepo, err := c.ChangeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get change repository for entry use case: %w", err)
	}

	sealer, err := c.Sealer()
	if err != nil {
		return nil, fmt.Errorf("failed to get sealer for entry use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for entry use case: %w", err)
	}

	useCase := journalUseCase.NewEntryUseCase(txManager, entryRepo, changeRepo, sealer)
	return journalUseCase.NewEntryUseCaseWithMetrics(useCase, businessMetrics), nil
}
