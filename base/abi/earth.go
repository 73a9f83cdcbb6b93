package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// EarthABI holds the constructor of the Earth ERC721A collection
var EarthABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(earthABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	EarthABI = _abi
}

var earthABIJson = `
[
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "_steward",
        "type": "address"
      },
      {
        "internalType": "address[]",
        "name": "_payees",
        "type": "address[]"
      },
      {
        "internalType": "uint256[]",
        "name": "_shares",
        "type": "uint256[]"
      },
      {
        "internalType": "string",
        "name": "_name",
        "type": "string"
      },
      {
        "internalType": "string",
        "name": "_symbol",
        "type": "string"
      },
      {
        "internalType": "string[2]",
        "name": "_uris",
        "type": "string[2]"
      },
      {
        "internalType": "uint256[2]",
        "name": "_mintLimits",
        "type": "uint256[2]"
      },
      {
        "internalType": "uint256[2]",
        "name": "_sale",
        "type": "uint256[2]"
      }
    ],
    "stateMutability": "nonpayable",
    "type": "constructor"
  }
]

`
