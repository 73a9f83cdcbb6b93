package env

import (
	"os"
)

// PodName example: aether-web-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: optimism
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// DeployerPrivateKey is the hex key of the deployer account, usually loaded from .env
func DeployerPrivateKey() string {
	return os.Getenv("DEPLOYER_PRIVATE_KEY")
}
