// deployargs prints the Earth deployment plan consumed by the contract
// deployment driver.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/earthart/aether/base/env"
	"github.com/earthart/aether/base/log"
	"github.com/earthart/aether/base/validator"
	"github.com/earthart/aether/domain/deployment"
)

var (
	envFile  = pflag.String("env-file", ".env", "dotenv file holding DEPLOYER_PRIVATE_KEY")
	deployer = pflag.String("deployer", "", "deployer address, overrides DEPLOYER_PRIVATE_KEY")
	pack     = pflag.Bool("pack", false, "also print the abi encoded constructor arguments")
	debug    = pflag.Bool("debug", false, "development logging")
)

type output struct {
	*deployment.Plan
	Constructor string `json:"constructor,omitempty"`
}

func main() {
	pflag.Parse()
	if err := log.Init(*debug); err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(*envFile); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "file": *envFile}).Warn("no dotenv loaded")
	}

	from, err := resolveDeployer()
	if err != nil {
		log.Log().WithField("err", err).Error("resolveDeployer failed")
		os.Exit(1)
	}

	plan, err := deployment.Earth(from)
	if err != nil {
		log.Log().WithField("err", err).Error("deployment.Earth failed")
		os.Exit(1)
	}
	if err := plan.Validate(); err != nil {
		log.Log().WithField("err", err).Error("invalid deployment plan")
		os.Exit(1)
	}

	out := output{Plan: plan}
	if *pack {
		packed, err := plan.PackConstructor()
		if err != nil {
			log.Log().WithField("err", err).Error("plan.PackConstructor failed")
			os.Exit(1)
		}
		out.Constructor = "0x" + hex.EncodeToString(packed)
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Log().WithField("err", err).Error("json.MarshalIndent failed")
		os.Exit(1)
	}
	fmt.Println(string(raw))
}

func resolveDeployer() (common.Address, error) {
	if *deployer != "" {
		if !validator.IsValidAddress(*deployer) {
			return common.Address{}, deployment.ErrInvalidAddress
		}
		return common.HexToAddress(*deployer), nil
	}
	return deployment.DeployerFromKey(env.DeployerPrivateKey())
}
