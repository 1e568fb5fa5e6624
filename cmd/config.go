package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fitgateway/adapters/myredis"
	"fitgateway/domain"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envRedisAddr  = "REDIS_ADDR"
	envConfigPath = "CONFIG_PATH"
)

// Config holds the full gateway configuration loaded by LoadConfig from
// environment variables and the YAML file. HTTPPort from SERVICE_PORT_HTTP;
// Redis from REDIS_ADDR; topology, failover budgets and breaker tuning from
// the YAML file at CONFIG_PATH.
type Config struct {
	HTTPPort int
	Redis    myredis.RedisConfig
	Topology domain.TopologyConfig
	Failover domain.FailoverConfig
	Breaker  domain.BreakerConfig
}

// yamlConfig is the root struct for YAML unmarshalling; contains services, failover and breaker.
type yamlConfig struct {
	Services map[string]yamlService `yaml:"services"`
	Failover yamlFailover           `yaml:"failover"`
	Breaker  yamlBreaker            `yaml:"breaker"`
}

// yamlService is the static instance list for one backend service type.
type yamlService struct {
	Instances []yamlInstance `yaml:"instances"`
}

// yamlInstance is one backend instance entry: host and port.
type yamlInstance struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// yamlFailover holds the failover budgets: attempts per instance, distinct instance cap, per-call timeout.
type yamlFailover struct {
	AttemptsPerInstance int `yaml:"attempts_per_instance"`
	MaxInstances        int `yaml:"max_instances"`
	CallTimeoutMs       int `yaml:"call_timeout_ms"`
}

// yamlBreaker holds the breaker tuning for the guarded workout-start path.
type yamlBreaker struct {
	FailureThreshold float64 `yaml:"failure_threshold"`
	MinRequests      uint32  `yaml:"min_requests"`
	WindowMs         int     `yaml:"window_ms"`
	ResetTimeoutMs   int     `yaml:"reset_timeout_ms"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
//
// Parameter path — absolute path to the file (LoadConfig converts CONFIG_PATH to absolute via filepath.Abs).
//
// Returns: (*yamlConfig, nil) on successful read and yaml.Unmarshal; (nil, error) on os.ReadFile or yaml.Unmarshal error.
//
// Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the gateway config from environment variables and the YAML
// file at CONFIG_PATH. Reads SERVICE_PORT_HTTP (required, 1-65535), REDIS_ADDR
// (required) and CONFIG_PATH (required, converted to absolute). The YAML
// topology is validated via domain.ValidateTopology; failover budgets must be
// positive (attempts_per_instance and max_instances default to 3 when
// omitted, call_timeout_ms to 2000); breaker tuning defaults to a 0.5
// threshold, 4 minimum requests, 60s window and 10s reset timeout.
//
// Parameters: none (source — os.Getenv and the file at CONFIG_PATH).
//
// Returns: (*Config, nil) on success; (nil, error) on invalid port, missing env, YAML load/parse error or invalid topology/budgets.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPortStr := os.Getenv(envHTTPPort)
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil || httpPortStr == "" {
		return nil, fmt.Errorf("%s must be a valid port (1-65535)", envHTTPPort)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}

	redisAddr := strings.TrimSpace(os.Getenv(envRedisAddr))
	if redisAddr == "" {
		return nil, fmt.Errorf("%s is required", envRedisAddr)
	}

	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	services := make(map[domain.ServiceType][]domain.ServiceInstance, len(raw.Services))
	for name, svc := range raw.Services {
		instances := make([]domain.ServiceInstance, 0, len(svc.Instances))
		for _, inst := range svc.Instances {
			instances = append(instances, domain.ServiceInstance{
				Host: strings.TrimSpace(inst.Host),
				Port: inst.Port,
			})
		}
		services[domain.ServiceType(strings.TrimSpace(name))] = instances
	}
	topology := domain.TopologyConfig{Services: services}
	if err := domain.ValidateTopology(topology); err != nil {
		return nil, err
	}

	failover := domain.FailoverConfig{
		AttemptsPerInstance: raw.Failover.AttemptsPerInstance,
		MaxInstances:        raw.Failover.MaxInstances,
		CallTimeout:         time.Duration(raw.Failover.CallTimeoutMs) * time.Millisecond,
	}
	if failover.AttemptsPerInstance == 0 {
		failover.AttemptsPerInstance = 3
	}
	if failover.MaxInstances == 0 {
		failover.MaxInstances = 3
	}
	if failover.CallTimeout == 0 {
		failover.CallTimeout = 2 * time.Second
	}
	if failover.AttemptsPerInstance < 0 || failover.MaxInstances < 0 || failover.CallTimeout < 0 {
		return nil, fmt.Errorf("failover budgets must be positive")
	}

	breaker := domain.BreakerConfig{
		FailureThreshold: raw.Breaker.FailureThreshold,
		MinRequests:      raw.Breaker.MinRequests,
		Window:           time.Duration(raw.Breaker.WindowMs) * time.Millisecond,
		ResetTimeout:     time.Duration(raw.Breaker.ResetTimeoutMs) * time.Millisecond,
	}
	if breaker.FailureThreshold == 0 {
		breaker.FailureThreshold = 0.5
	}
	if breaker.MinRequests == 0 {
		breaker.MinRequests = 4
	}
	if breaker.Window == 0 {
		breaker.Window = time.Minute
	}
	if breaker.ResetTimeout == 0 {
		breaker.ResetTimeout = 10 * time.Second
	}
	if breaker.FailureThreshold < 0 || breaker.FailureThreshold > 1 {
		return nil, fmt.Errorf("breaker failure_threshold must be in (0, 1]")
	}
	if breaker.Window < 0 || breaker.ResetTimeout < 0 {
		return nil, fmt.Errorf("breaker intervals must be positive")
	}

	return &Config{
		HTTPPort: httpPort,
		Redis:    myredis.RedisConfig{Addr: redisAddr},
		Topology: topology,
		Failover: failover,
		Breaker:  breaker,
	}, nil
}
