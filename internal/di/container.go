package di

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wedding-clickz/internal/auth"
	"wedding-clickz/internal/auth/config"
	"wedding-clickz/internal/gallery"
	"wedding-clickz/internal/shared/eventbus"
	"wedding-clickz/internal/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires the application modules and owns their lifecycle
type Container struct {
	mu sync.RWMutex

	// Module instances
	AuthModule    *auth.AuthModule
	GalleryModule *gallery.GalleryModule

	// Shared infrastructure
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
	EventBus    *eventbus.EventBus

	// Configuration
	AuthConfig *config.Config

	// Logger
	Logger logger.Logger
}

// NewContainer creates an empty DI container
func NewContainer(log logger.Logger) *Container {
	return &Container{
		Logger:   log,
		EventBus: eventbus.NewEventBus(log),
	}
}

// InitializeMongo stores the shared MongoDB client and database handle
func (c *Container) InitializeMongo(client *mongo.Client, dbName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.MongoClient = client
	c.MongoDB = client.Database(dbName)
}

// InitializeAuth initializes the authentication module
func (c *Container) InitializeAuth(authConfig *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before the auth module")
	}

	c.AuthConfig = authConfig

	authModule, err := auth.NewAuthModule(c.MongoDB, authConfig, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create auth module: %w", err)
	}

	c.AuthModule = authModule
	return nil
}

// InitializeGallery initializes the gallery module. The auth module must
// exist first, its middleware gates the gallery's write routes.
func (c *Container) InitializeGallery() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.AuthModule == nil {
		return fmt.Errorf("auth module must be initialized before the gallery module")
	}
	if c.MongoDB == nil {
		return fmt.Errorf("MongoDB must be initialized before the gallery module")
	}

	galleryModule, err := gallery.NewGalleryModule(c.MongoDB, c.EventBus, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create gallery module: %w", err)
	}

	c.GalleryModule = galleryModule
	return nil
}

// GetAuthModule returns the auth module instance
func (c *Container) GetAuthModule() *auth.AuthModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AuthModule
}

// GetGalleryModule returns the gallery module instance
func (c *Container) GetGalleryModule() *gallery.GalleryModule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.GalleryModule
}

// HealthCheck verifies the container's backing services
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MongoClient != nil {
		if err := c.MongoClient.Ping(ctx, nil); err != nil {
			return fmt.Errorf("MongoDB health check failed: %w", err)
		}
	}

	return nil
}

// Cleanup shuts the modules down in reverse initialization order and
// disconnects MongoDB
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.GalleryModule != nil {
		if err := c.GalleryModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop gallery module: %w", err))
		}
		c.GalleryModule = nil
	}

	if c.AuthModule != nil {
		if err := c.AuthModule.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop auth module: %w", err))
		}
		c.AuthModule = nil
	}

	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to disconnect MongoDB: %w", err))
		}
		c.MongoClient = nil
		c.MongoDB = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}
	return nil
}

// Close gracefully shuts down the container with a timeout
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Cleanup(ctx); err != nil {
		c.Logger.Warnf("Cleanup errors occurred: %v", err)
		return err
	}
	return nil
}
