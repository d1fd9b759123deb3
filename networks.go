package nova402

import "fmt"

// NetworkType represents the blockchain virtual machine type.
type NetworkType int

const (
	// NetworkTypeUnknown represents an unrecognized network.
	NetworkTypeUnknown NetworkType = iota
	// NetworkTypeEVM represents Ethereum Virtual Machine chains.
	NetworkTypeEVM
	// NetworkTypeSolana represents Solana chains.
	NetworkTypeSolana
)

// NetworkConfig holds static configuration for a supported network.
// This is externally supplied reference data; the core only validates
// chain-id membership against it and never mutates it.
type NetworkConfig struct {
	// ChainID is the EVM chain id. Zero for non-EVM networks.
	ChainID uint64

	// Name is the human-readable network name.
	Name string

	// Type is the virtual machine type of the network.
	Type NetworkType

	// RPCURL is the default public RPC endpoint.
	RPCURL string
}

// Supported network identifiers.
const (
	NetworkBaseMainnet   = "base-mainnet"
	NetworkBaseSepolia   = "base-sepolia"
	NetworkPolygon       = "polygon"
	NetworkBSC           = "bsc"
	NetworkSei           = "sei"
	NetworkPeaq          = "peaq"
	NetworkSolanaMainnet = "solana-mainnet"
	NetworkSolanaDevnet  = "solana-devnet"
)

// networks maps network identifiers to their static configuration.
var networks = map[string]NetworkConfig{
	NetworkBaseMainnet: {
		ChainID: 8453,
		Name:    "Base Mainnet",
		Type:    NetworkTypeEVM,
		RPCURL:  "https://mainnet.base.org",
	},
	NetworkBaseSepolia: {
		ChainID: 84532,
		Name:    "Base Sepolia",
		Type:    NetworkTypeEVM,
		RPCURL:  "https://sepolia.base.org",
	},
	NetworkPolygon: {
		ChainID: 137,
		Name:    "Polygon",
		Type:    NetworkTypeEVM,
		RPCURL:  "https://polygon-rpc.com",
	},
	NetworkBSC: {
		ChainID: 56,
		Name:    "BNB Smart Chain",
		Type:    NetworkTypeEVM,
		RPCURL:  "https://bsc-dataseed.binance.org",
	},
	NetworkSei: {
		ChainID: 1329,
		Name:    "Sei Network",
		Type:    NetworkTypeEVM,
		RPCURL:  "https://evm-rpc.sei-apis.com",
	},
	NetworkPeaq: {
		ChainID: 3338,
		Name:    "Peaq Network",
		Type:    NetworkTypeEVM,
		RPCURL:  "https://peaq.api.onfinality.io/public",
	},
	NetworkSolanaMainnet: {
		ChainID: 0,
		Name:    "Solana Mainnet",
		Type:    NetworkTypeSolana,
		RPCURL:  "https://api.mainnet-beta.solana.com",
	},
	NetworkSolanaDevnet: {
		ChainID: 0,
		Name:    "Solana Devnet",
		Type:    NetworkTypeSolana,
		RPCURL:  "https://api.devnet.solana.com",
	},
}

// usdcAddresses maps network identifiers to the official Circle USDC contract
// or mint address on that network.
var usdcAddresses = map[string]string{
	NetworkBaseMainnet:   "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
	NetworkBaseSepolia:   "0x036CbD53842c5426634e7929541eC2318f3dCF7e",
	NetworkPolygon:       "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359",
	NetworkBSC:           "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d",
	NetworkSolanaMainnet: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
	NetworkSolanaDevnet:  "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU",
}

// GetNetworkConfig returns the configuration for a network identifier.
// Returns ErrInvalidInput if the network is not recognized.
func GetNetworkConfig(network string) (NetworkConfig, error) {
	config, ok := networks[network]
	if !ok {
		return NetworkConfig{}, fmt.Errorf("%w: unsupported network: %s", ErrInvalidInput, network)
	}
	return config, nil
}

// GetUSDCAddress returns the USDC contract or mint address for a network.
// Returns ErrInvalidInput if USDC is not configured for the network.
func GetUSDCAddress(network string) (string, error) {
	address, ok := usdcAddresses[network]
	if !ok {
		return "", fmt.Errorf("%w: USDC not configured for network: %s", ErrInvalidInput, network)
	}
	return address, nil
}

// AllowedChainIDs returns the chain ids of all configured EVM networks, in no
// particular order. The result is a fresh slice and may be mutated freely;
// it is the allow-list consumed by validation.ChainIDAllowed.
func AllowedChainIDs() []uint64 {
	ids := make([]uint64, 0, len(networks))
	for _, config := range networks {
		if config.Type == NetworkTypeEVM {
			ids = append(ids, config.ChainID)
		}
	}
	return ids
}

// IsEVMNetwork reports whether the network identifier names an EVM chain.
func IsEVMNetwork(network string) bool {
	config, err := GetNetworkConfig(network)
	return err == nil && config.Type == NetworkTypeEVM
}

// IsSolanaNetwork reports whether the network identifier names a Solana chain.
func IsSolanaNetwork(network string) bool {
	config, err := GetNetworkConfig(network)
	return err == nil && config.Type == NetworkTypeSolana
}
