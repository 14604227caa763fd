package app

import (
	"fmt"

	chatRepository "github.com/lifelog-app/lifelog/internal/chat/repository"
	chatUseCase "github.com/lifelog-app/lifelog/internal/chat/usecase"
)

// MessageRepository returns the chat message repository instance.
func (c *Container) MessageRepository() (chatUseCase.MessageRepository, error) {
	var err error
	c.messageRepoInit.Do(func() {
		c.messageRepo, err = c.initMessageRepository()
		if err != nil {
			c.initErrors["messageRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["messageRepo"]; exists {
		return nil, storedErr
	}
	return c.messageRepo, nil
}

// MessageUseCase returns the chat message use case instance.
func (c *Container) MessageUseCase() (chatUseCase.MessageUseCase, error) {
	var err error
	c.messageUseCaseInit.Do(func() {
		c.messageUseCase, err = c.initMessageUseCase()
		if err != nil {
			c.initErrors["messageUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["messageUseCase"]; exists {
		return nil, storedErr
	}
	return c.messageUseCase, nil
}

// initMessageRepository creates the message repository based on the database driver.
func (c *Container) initMessageRepository() (chatUseCase.MessageRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for message repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return chatRepository.NewMySQLMessageRepository(db), nil
	case "postgres":
		return chatRepository.NewPostgreSQLMessageRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initMessageUseCase creates the message use case with all its dependencies.
func (c *Container) initMessageUseCase() (chatUseCase.MessageUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for message use case: %w", err)
	}

	messageRepo, err := c.MessageRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get message repository for message use case: %w", err)
	}

	changeRepo, err := c.ChangeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get change repository for message use case: %w", err)
	}

	sealer, err := c.Sealer()
	if err != nil {
		return nil, fmt.Errorf("failed to get sealer for message use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for message use case: %w", err)
	}

	useCase := chatUseCase.NewMessageUseCase(txManager, messageRepo, changeRepo, sealer)
	return chatUseCase.NewMessageUseCaseWithMetrics(useCase, businessMetrics), nil
}
