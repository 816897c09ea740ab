package txbuild

import (
	"errors"
	"fmt"
)

// marketplaceModule and nftModule name the package modules whose entry
// points the builders target.
const (
	marketplaceModule = "freak_marketplace"
	nftModule         = "freak_nft"
)

// ErrTypeUnresolved is returned when a buy is constructed without a
// resolved asset type tag and no manual override.
var ErrTypeUnresolved = errors.New("asset type unresolved")

// ErrNonPositivePrice is returned when a list is constructed with a
// zero price. Callers validate price input before construction; this
// is the last gate before an unpriced listing reaches the chain.
var ErrNonPositivePrice = errors.New("price must be positive")

// List constructs a list-for-sale operation: one call into the
// registry's list entry point, type-parameterized by the asset's tag.
func List(packageID, marketplaceID, assetObjectID, assetTypeTag string, priceMist uint64) (*Operation, error) {
	if priceMist == 0 {
		return nil, ErrNonPositivePrice
	}
	return &Operation{
		Action: ActionList,
		Commands: []Command{{
			Kind: CmdMoveCall,
			MoveCall: &MoveCall{
				Target:        fmt.Sprintf("%s::%s::list", packageID, marketplaceModule),
				TypeArguments: []string{assetTypeTag},
				Arguments: []Argument{
					objectArg(marketplaceID),
					objectArg(assetObjectID),
					u64Arg(priceMist),
				},
			},
		}},
	}, nil
}

// Buy constructs a buy operation: split the exact price out of the
// buyer's gas coin, then call the registry's buy entry point with the
// split value. The asset type tag must be resolved (or manually
// overridden) before construction.
func Buy(packageID, marketplaceID, listingID, assetTypeTag string, priceMist uint64) (*Operation, error) {
	if assetTypeTag == "" {
		return nil, ErrTypeUnresolved
	}
	return &Operation{
		Action: ActionBuy,
		Commands: []Command{
			{
				Kind: CmdSplitCoins,
				SplitCoins: &SplitCoins{
					Coin:    gasArg(),
					Amounts: []uint64{priceMist},
				},
			},
			{
				Kind: CmdMoveCall,
				MoveCall: &MoveCall{
					Target:        fmt.Sprintf("%s::%s::buy", packageID, marketplaceModule),
					TypeArguments: []string{assetTypeTag},
					Arguments: []Argument{
						objectArg(marketplaceID),
						objectArg(listingID),
						resultArg(0),
					},
				},
			},
		},
	}, nil
}

// Burn constructs a destroy operation: a transfer of the asset to the
// canonical null address. No registry interaction; destruction needs
// no counterpart.
func Burn(assetObjectID string) *Operation {
	return &Operation{
		Action: ActionBurn,
		Commands: []Command{{
			Kind: CmdTransferObjects,
			TransferObjects: &TransferObjects{
				Objects:   []Argument{objectArg(assetObjectID)},
				Recipient: BurnAddress,
			},
		}},
	}
}

// Mint constructs a mint operation against the collection's mint
// entry point.
func Mint(packageID, name, dna, imageURL string) *Operation {
	return &Operation{
		Action: ActionMint,
		Commands: []Command{{
			Kind: CmdMoveCall,
			MoveCall: &MoveCall{
				Target: fmt.Sprintf("%s::%s::mint", packageID, nftModule),
				Arguments: []Argument{
					strArg(name),
					strArg(dna),
					strArg(imageURL),
				},
			},
		}},
	}
}
