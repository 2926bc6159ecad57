// signcrypt is a command line tool around the signcryption engine: it
// generates recipient keys, splits them into threshold shares, seals
// messages to a recipient and unseals them again, either with the full
// secret key or by combining decryption shares.
package main

import (
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli/v2"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/common/log"
	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
	"github.com/LF-Decentralized-Trust-labs/agora-blsful/fs"
	"github.com/LF-Decentralized-Trust-labs/agora-blsful/key"
)

// Automatically set through -ldflags
var (
	version   = "master"
	gitCommit = "none"
	buildDate = "unknown"
)

var folderFlag = &cli.StringFlag{
	Name:  "folder",
	Value: defaultConfigFolder(),
	Usage: "Folder to keep all the signcrypt cryptographic information, with absolute path.",
}

var suiteFlag = &cli.StringFlag{
	Name:  "suite",
	Value: crypto.DefaultSuiteID,
	Usage: fmt.Sprintf("Ciphersuite to use, one of %v.", crypto.ListSuites()),
}

var schemeFlag = &cli.StringFlag{
	Name:  "scheme",
	Value: crypto.Basic.String(),
	Usage: fmt.Sprintf("Signature variant the ciphertext is bound to, one of %v.", crypto.ListSchemes()),
}

var publicFlag = &cli.StringFlag{
	Name:  "public",
	Usage: "Path to the recipient's public key file.",
}

var inFlag = &cli.StringFlag{
	Name:  "in",
	Usage: "Path to the ciphertext file.",
}

var outFlag = &cli.StringFlag{
	Name:  "out",
	Usage: "Write the result to the given file instead of stdout.",
}

var thresholdFlag = &cli.IntFlag{
	Name:  "threshold",
	Usage: "Number of shares needed to reconstruct the decryption capability.",
}

var nodesFlag = &cli.IntFlag{
	Name:  "nodes",
	Usage: "Number of shares to deal.",
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "If set, verbosity is at the debug level.",
}

func main() {
	app := &cli.App{
		Name:    "signcrypt",
		Version: fmt.Sprintf("%v (date %v, commit %v)", version, buildDate, gitCommit),
		Usage:   "BLS signcryption: seal messages to a recipient, unseal them with a key or a threshold of shares",
		Flags:   []cli.Flag{verboseFlag},
		Commands: []*cli.Command{
			{
				Name:   "keygen",
				Usage:  "Generate a long-term recipient key pair and store it",
				Flags:  []cli.Flag{folderFlag, suiteFlag},
				Action: keygenCmd,
			},
			{
				Name:   "split",
				Usage:  "Split the stored secret key into threshold shares",
				Flags:  []cli.Flag{folderFlag, thresholdFlag, nodesFlag, outFlag},
				Action: splitCmd,
			},
			{
				Name:      "seal",
				Usage:     "Seal a message to a recipient public key",
				ArgsUsage: "<message>",
				Flags:     []cli.Flag{publicFlag, schemeFlag, outFlag},
				Action:    sealCmd,
			},
			{
				Name:   "unseal",
				Usage:  "Unseal a ciphertext with the stored secret key",
				Flags:  []cli.Flag{folderFlag, inFlag},
				Action: unsealCmd,
			},
			{
				Name:      "share-decrypt",
				Usage:     "Produce this participant's decryption share for a ciphertext",
				ArgsUsage: "<share file>",
				Flags:     []cli.Flag{inFlag, outFlag},
				Action:    shareDecryptCmd,
			},
			{
				Name:      "combine",
				Usage:     "Combine decryption shares and unseal a ciphertext",
				ArgsUsage: "<decryption share files...>",
				Flags:     []cli.Flag{inFlag, suiteFlag, thresholdFlag},
				Action:    combineCmd,
			},
			{
				Name:   "show",
				Usage:  "Print a parsed ciphertext as hex-encoded JSON",
				Flags:  []cli.Flag{inFlag, suiteFlag},
				Action: showCmd,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logger(c *cli.Context) log.Logger {
	if c.Bool(verboseFlag.Name) {
		return log.New(nil, log.DebugLevel, false)
	}
	return log.DefaultLogger()
}

func defaultConfigFolder() string {
	return path.Join(fs.HomeFolder(), ".signcrypt")
}

func suiteFromFlag(c *cli.Context) (*crypto.Suite, error) {
	return crypto.SuiteFromName(c.String(suiteFlag.Name))
}

func loadPair(c *cli.Context, l log.Logger) (*key.Pair, error) {
	store, err := key.NewFileStore(c.String(folderFlag.Name), l)
	if err != nil {
		return nil, err
	}
	pair, err := store.LoadKeyPair()
	if err != nil {
		return nil, fmt.Errorf("no key pair found, run keygen first: %w", err)
	}
	return pair, nil
}

func writeOut(c *cli.Context, buff []byte) error {
	if c.IsSet(outFlag.Name) {
		return os.WriteFile(c.String(outFlag.Name), buff, 0600)
	}
	_, err := fmt.Fprintf(os.Stdout, "%x\n", buff)
	return err
}
