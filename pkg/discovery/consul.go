package discovery

import (
	"fmt"
	"learning-service/internal/config"
	"log"
	"strconv"

	"github.com/hashicorp/consul/api"
)

// ServiceRegistry registers the service with Consul and deregisters it on
// shutdown. Registration is optional; callers skip it when no Consul address
// is configured.
type ServiceRegistry struct {
	client *api.Client
	config *config.Config
}

func NewServiceRegistry(cfg *config.Config) (*ServiceRegistry, error) {
	consulConfig := api.DefaultConfig()
	consulConfig.Address = cfg.ConsulAddress

	client, err := api.NewClient(consulConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %v", err)
	}

	return &ServiceRegistry{
		client: client,
		config: cfg,
	}, nil
}

func (sr *ServiceRegistry) Register() error {
	httpPort, err := strconv.Atoi(sr.config.Port)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %v", err)
	}

	registration := &api.AgentServiceRegistration{
		ID:      sr.config.ServiceID,
		Name:    sr.config.ServiceName,
		Port:    httpPort,
		Address: sr.config.ServiceAddress,
		Check: &api.AgentServiceCheck{
			HTTP:     fmt.Sprintf("http://%s:%s/health", sr.config.ServiceAddress, sr.config.Port),
			Interval: "10s",
			Timeout:  "5s",
		},
		Tags: []string{"learning", "auth", "http", "api"},
		Meta: map[string]string{
			"protocol": "http",
			"version":  "1.0",
		},
	}

	if err := sr.client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register service with Consul: %v", err)
	}

	log.Printf("Successfully registered service %s with Consul at %s:%d",
		sr.config.ServiceName, sr.config.ServiceAddress, httpPort)
	return nil
}

func (sr *ServiceRegistry) Deregister() error {
	if err := sr.client.Agent().ServiceDeregister(sr.config.ServiceID); err != nil {
		log.Printf("Error deregistering service: %v", err)
		return err
	}

	log.Printf("Successfully deregistered service %s from Consul", sr.config.ServiceName)
	return nil
}

// HealthCheck verifies both the Consul connection and our own registration.
func (sr *ServiceRegistry) HealthCheck() error {
	if _, err := sr.client.Status().Leader(); err != nil {
		return fmt.Errorf("consul connection failed: %v", err)
	}

	services, err := sr.client.Agent().Services()
	if err != nil {
		return fmt.Errorf("failed to get services: %v", err)
	}

	if _, exists := services[sr.config.ServiceID]; !exists {
		return fmt.Errorf("service %s not registered", sr.config.ServiceID)
	}

	return nil
}
