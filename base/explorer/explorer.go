// Package explorer formats addresses and transaction hashes into block explorer links.
package explorer

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// DefaultTxPath is where the dapp's own block explorer shows a transaction
	DefaultTxPath = "/blockexplorer/transaction/"

	shortHashLen = 10
)

// Link is a display text with an optional target. Href is empty for values
// which could not be formatted.
type Link struct {
	Text  string `json:"text"`
	Title string `json:"title"`
	Href  string `json:"href,omitempty"`
}

type Formatter struct {
	explorerURL string
	txPath      string
}

// New creates a formatter linking addresses to explorerURL (e.g. https://optimistic.etherscan.io)
// and transactions to txPath. An empty txPath uses DefaultTxPath.
func New(explorerURL, txPath string) *Formatter {
	if txPath == "" {
		txPath = DefaultTxPath
	}
	return &Formatter{
		explorerURL: strings.TrimRight(explorerURL, "/"),
		txPath:      txPath,
	}
}

// Address renders a checksummed, shortened address. name replaces the short
// form when not empty. Invalid addresses are rendered unchanged without a link.
func (f *Formatter) Address(address string, name string) Link {
	if !common.IsHexAddress(address) {
		return Link{Text: address, Title: address}
	}
	checksum := common.HexToAddress(address).Hex()
	text := ShortAddress(checksum)
	if name != "" {
		text = name
	}
	link := Link{Text: text, Title: checksum}
	if f.explorerURL != "" {
		link.Href = f.explorerURL + "/address/" + checksum
	}
	return link
}

// TxHash renders a shortened transaction reference linking to the tx page
func (f *Formatter) TxHash(hash string) Link {
	return Link{
		Text:  ShortHash(hash),
		Title: hash,
		Href:  f.txPath + hash,
	}
}

// ShortAddress keeps "0x" plus 3 chars and the last 4, like 0x5f3...0652
func ShortAddress(address string) string {
	if len(address) <= shortHashLen {
		return address
	}
	return address[:5] + "..." + address[len(address)-4:]
}

// ShortHash keeps the first 6 and the last 4 characters
func ShortHash(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:6] + "..." + hash[len(hash)-4:]
}
