package app

import (
	"fmt"

	authRepository "github.com/lifelog-app/lifelog/internal/auth/repository"
	authService "github.com/lifelog-app/lifelog/internal/auth/service"
	authUseCase "github.com/lifelog-app/lifelog/internal/auth/usecase"
)

// SecretService returns the device secret service.
func (c *Container) SecretService() authService.SecretService {
	c.secretServiceInit.Do(func() {
		c.secretService = authService.NewSecretService()
	})
	return c.secretService
}

// DeviceRepository returns the device repository instance.
func (c *Container) DeviceRepository() (authUseCase.DeviceRepository, error) {
	var err error
	c.deviceRepoInit.Do(func() {
		c.deviceRepo, err = c.initDeviceRepository()
		if err != nil {
			c.initErrors["deviceRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["deviceRepo"]; exists {
		return nil, storedErr
	}
	return c.deviceRepo, nil
}

// DeviceUseCase returns the device use case instance.
func (c *Container) DeviceUseCase() (authUseCase.DeviceUseCase, error) {
	var err error
	c.deviceUseCaseInit.Do(func() {
		c.deviceUseCase, err = c.initDeviceUseCase()
		if err != nil {
			c.initErrors["deviceUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["deviceUseCase"]; exists {
		return nil, storedErr
	}
	return c.deviceUseCase, nil
}

// initDeviceRepository creates the device repository based on the database driver.
func (c *Container) initDeviceRepository() (authUseCase.DeviceRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for device repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLDeviceRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLDeviceRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initDeviceUseCase creates the device use case with all its dependencies.
func (c *Container) initDeviceUseCase() (authUseCase.DeviceUseCase, error) {
	deviceRepo, err := c.DeviceRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get device repository for device use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for device use case: %w", err)
	}

	useCase := authUseCase.NewDeviceUseCase(deviceRepo, c.SecretService())
	return authUseCase.NewDeviceUseCaseWithMetrics(useCase, businessMetrics), nil
}
