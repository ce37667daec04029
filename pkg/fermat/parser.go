package fermat

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// Challenge is a named modulus to factor, with optional RSA decryption
// material attached.
type Challenge struct {
	Name       string   // Challenge identifier
	N          *big.Int // Modulus to factor
	Strategy   string   // Suggested strategy: "near", "brute" or "mod6"
	E          *big.Int // Public exponent, nil unless the challenge carries a ciphertext
	Ciphertext *big.Int // Ciphertext to decrypt, nil for factor-only challenges
}

// ChallengeParser defines the interface for loading challenges from various
// sources.
type ChallengeParser interface {
	// ParseChallenges loads challenges from a source and returns them.
	ParseChallenges(source string) ([]*Challenge, error)
}

// JSONParser loads challenges from a JSON file.
//
// Expected format:
//
//	[
//	  {"name": "q1", "n": "17976931…", "strategy": "near"},
//	  {"name": "q4", "n": "…", "strategy": "near", "e": 65537, "ciphertext": "22096…"}
//	]
//
// Integer fields may be decimal strings, 0x-prefixed hex strings, or plain
// JSON numbers.
type JSONParser struct{}

// ParseChallenges loads challenges from a JSON file.
func (p *JSONParser) ParseChallenges(jsonFile string) ([]*Challenge, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber() // Preserve large numbers as json.Number instead of float64

	var items []struct {
		Name       string      `json:"name"`
		N          interface{} `json:"n"`
		Strategy   string      `json:"strategy"`
		E          interface{} `json:"e"`
		Ciphertext interface{} `json:"ciphertext"`
	}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	challenges := make([]*Challenge, 0, len(items))
	for _, item := range items {
		if item.Name == "" {
			return nil, fmt.Errorf("challenge missing name field")
		}
		if item.N == nil {
			return nil, fmt.Errorf("challenge %q: missing n field", item.Name)
		}
		n, err := parseBigInt(item.N)
		if err != nil {
			return nil, fmt.Errorf("challenge %q: failed to parse n: %w", item.Name, err)
		}
		ch := &Challenge{
			Name:     item.Name,
			N:        n,
			Strategy: item.Strategy,
		}
		if item.E != nil {
			if ch.E, err = parseBigInt(item.E); err != nil {
				return nil, fmt.Errorf("challenge %q: failed to parse e: %w", item.Name, err)
			}
		}
		if item.Ciphertext != nil {
			if ch.Ciphertext, err = parseBigInt(item.Ciphertext); err != nil {
				return nil, fmt.Errorf("challenge %q: failed to parse ciphertext: %w", item.Name, err)
			}
		}
		challenges = append(challenges, ch)
	}

	return challenges, nil
}

// parseBigInt parses a big integer from a decimal string, a 0x-prefixed hex
// string, or a JSON number.
func parseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		base := 10
		s := v
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			s = s[2:]
			base = 16
		}
		z := new(big.Int)
		if _, ok := z.SetString(s, base); !ok {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case json.Number:
		z := new(big.Int)
		if _, ok := z.SetString(string(v), 10); !ok {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", val)
	}
}
