// Command egbench is a small external benchmark harness for the
// elgamal/group packages: it encrypts-and-decrypts N random small
// integers and reports ops/sec. It is not part of the cryptographic
// core; it only exercises it end to end.
package main

import (
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/takakv/electionguard-core/elgamal"
	"github.com/takakv/electionguard-core/group"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int("count", 1000, "Number of encrypt/decrypt round trips to run")
	rootCmd.Flags().String("tier", "high", "PowRadix acceleration tier: none, low, high, extreme")
	rootCmd.Flags().Bool("test-group", false, "Use the 16-bit test group instead of production parameters")
}

var rootCmd = &cobra.Command{
	Use:   "egbench",
	Short: "Benchmark harness for the ElectionGuard-style exponential ElGamal core.",
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		tierName, _ := cmd.Flags().GetString("tier")
		useTestGroup, _ := cmd.Flags().GetBool("test-group")

		tier, err := parseTier(tierName)
		if err != nil {
			log.WithError(err).Fatal("invalid --tier")
		}

		ctx := group.Production(tier)
		if useTestGroup {
			ctx = group.Test(tier)
		}

		log.WithFields(log.Fields{
			"count":      count,
			"tier":       tierName,
			"production": ctx.IsProductionStrength(),
		}).Info("starting benchmark")

		runBenchmark(ctx, count)
	},
}

func parseTier(name string) (group.PowRadixOption, error) {
	switch name {
	case "none":
		return group.NoAcceleration, nil
	case "low":
		return group.LowMemoryUse, nil
	case "high":
		return group.HighMemoryUse, nil
	case "extreme":
		return group.ExtremeMemoryUse, nil
	default:
		return 0, errUnknownTier(name)
	}
}

type errUnknownTier string

func (e errUnknownTier) Error() string { return "unknown tier: " + string(e) }

func runBenchmark(ctx *group.GroupContext, count int) {
	keypair, err := elgamal.KeypairFromRandom(ctx)
	if err != nil {
		log.WithError(err).Fatal("keypair generation failed")
	}

	maxMessage := 1000
	messages := make([]int, count)
	for i := range messages {
		messages[i] = rand.Intn(maxMessage)
	}

	start := time.Now()
	mismatches := 0
	for _, m := range messages {
		ciphertext, _, err := elgamal.EncryptRandom(ctx, keypair.Public, m)
		if err != nil {
			log.WithError(err).Fatal("encryption failed")
		}
		decrypted, ok := elgamal.Decrypt(ctx, keypair.Secret, ciphertext)
		if !ok || decrypted != m {
			mismatches++
		}
	}
	elapsed := time.Since(start)

	log.WithFields(log.Fields{
		"count":       count,
		"elapsed":     elapsed,
		"ops_per_sec": float64(count) / elapsed.Seconds(),
		"mismatches":  mismatches,
	}).Info("benchmark complete")
}
