package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/mahdiidarabi/fermat-rsa/pkg/fermat"
	"github.com/mahdiidarabi/fermat-rsa/pkg/rsacrack"
)

func main() {
	var (
		challengesFile = flag.String("challenges", "fixtures/challenges.json", "Path to challenge file (JSON)")
		name           = flag.String("name", "", "Name of the challenge to run")
		modulus        = flag.String("n", "", "Modulus to factor directly, as a decimal string (alternative to -name)")
		strategyName   = flag.String("strategy", "", "Factoring strategy: near, brute or mod6 (default: challenge's suggestion, else near)")
		maxIterations  = flag.Int("max-iterations", 0, "Iteration bound for the brute-force strategy (0 = default 2^20)")
		decrypt        = flag.Bool("decrypt", false, "After factoring, decrypt the challenge's ciphertext")
		timeout        = flag.Duration("timeout", 0, "Abort the search after this duration (0 = no limit)")
	)
	flag.Parse()

	if *name == "" && *modulus == "" {
		fmt.Fprintf(os.Stderr, "Error: one of -name or -n is required\n")
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	client := fermat.NewClient()

	var challenge *fermat.Challenge
	if *name != "" {
		var err error
		challenge, err = client.LoadChallenge(*challengesFile, *name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		n, ok := new(big.Int).SetString(*modulus, 10)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: -n is not a valid decimal integer\n")
			os.Exit(1)
		}
		challenge = &fermat.Challenge{Name: "cli", N: n}
	}

	strategy, err := pickStrategy(*strategyName, challenge.Strategy, *maxIterations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Factoring challenge %q with the %s strategy...\n", challenge.Name, strategy.Name())
	start := time.Now()
	result, err := client.WithStrategy(strategy).Factor(ctx, challenge.N)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n[+] Factored the modulus in %d iteration(s) (%s):\n", result.Iterations, time.Since(start).Round(time.Millisecond))
	fmt.Printf("    p = %s\n", result.P)
	fmt.Printf("    q = %s\n", result.Q)

	if !*decrypt {
		return
	}
	if challenge.E == nil || challenge.Ciphertext == nil {
		fmt.Fprintf(os.Stderr, "Error: challenge %q carries no ciphertext to decrypt\n", challenge.Name)
		os.Exit(1)
	}

	decryptor, err := rsacrack.NewDecryptor(challenge.N, result.P, result.Q, challenge.E)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	plaintext, err := decryptor.DecryptPKCS1(challenge.Ciphertext)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decryption failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n[+] Recovered plaintext:\n")
	fmt.Printf("    %s\n", plaintext)
}

// pickStrategy resolves the strategy to run: an explicit -strategy flag wins,
// then the challenge file's suggestion, then near-square.
func pickStrategy(flagName, suggested string, maxIterations int) (fermat.Strategy, error) {
	name := flagName
	if name == "" {
		name = suggested
	}
	if name == "" {
		name = "near"
	}

	strategy, err := fermat.StrategyByName(name)
	if err != nil {
		return nil, err
	}
	if bf, ok := strategy.(*fermat.BruteForceStrategy); ok && maxIterations > 0 {
		config := fermat.DefaultBruteForceConfig()
		config.MaxIterations = maxIterations
		return bf.WithConfig(config), nil
	}
	return strategy, nil
}
