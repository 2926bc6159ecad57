package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	json "github.com/nikkolasg/hexjson"
	"github.com/urfave/cli/v2"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/crypto"
	"github.com/LF-Decentralized-Trust-labs/agora-blsful/key"
	"github.com/LF-Decentralized-Trust-labs/agora-blsful/signcrypt"
)

func keygenCmd(c *cli.Context) error {
	l := logger(c)
	suite, err := suiteFromFlag(c)
	if err != nil {
		return err
	}
	pair := key.NewKeyPair(suite)
	store, err := key.NewFileStore(c.String(folderFlag.Name), l)
	if err != nil {
		return err
	}
	if err := store.SaveKeyPair(pair); err != nil {
		return fmt.Errorf("saving key pair: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Generated %s key pair, public key: %s\n", suite.Name(), key.PointToString(pair.Public))
	return nil
}

func splitCmd(c *cli.Context) error {
	l := logger(c)
	if !c.IsSet(nodesFlag.Name) {
		return errors.New("split needs the --nodes flag")
	}
	n := c.Int(nodesFlag.Name)
	t := key.DefaultThreshold(n)
	if c.IsSet(thresholdFlag.Name) {
		t = c.Int(thresholdFlag.Name)
	}

	pair, err := loadPair(c, l)
	if err != nil {
		return err
	}
	shares, err := key.Split(pair, t, n)
	if err != nil {
		return err
	}

	outDir := path.Join(c.String(folderFlag.Name), "shares")
	if c.IsSet(outFlag.Name) {
		outDir = c.String(outFlag.Name)
	}
	if err := os.MkdirAll(outDir, 0740); err != nil {
		return err
	}
	for _, sh := range shares {
		file := path.Join(outDir, fmt.Sprintf("share-%d.private", sh.Index))
		if err := key.Save(file, sh, true); err != nil {
			return fmt.Errorf("saving share %d: %w", sh.Index, err)
		}
		l.Infow("saved key share", "index", sh.Index, "file", file)
	}
	fmt.Fprintf(os.Stdout, "Dealt %d shares with threshold %d into %s\n", n, t, outDir)
	return nil
}

func sealCmd(c *cli.Context) error {
	if !c.IsSet(publicFlag.Name) {
		return errors.New("seal needs the --public flag")
	}
	if c.NArg() == 0 {
		return errors.New("seal needs a message argument")
	}
	msg := []byte(strings.Join(c.Args().Slice(), " "))

	identity := new(key.Identity)
	if err := key.Load(c.String(publicFlag.Name), identity); err != nil {
		return fmt.Errorf("loading recipient public key: %w", err)
	}
	scheme, err := crypto.SchemeFromName(c.String(schemeFlag.Name))
	if err != nil {
		return err
	}

	ct, err := signcrypt.Seal(identity.Suite, identity.Key, scheme, msg)
	if err != nil {
		return err
	}
	buff, err := ct.MarshalBinary()
	if err != nil {
		return err
	}
	return writeOut(c, buff)
}

func unsealCmd(c *cli.Context) error {
	l := logger(c)
	pair, err := loadPair(c, l)
	if err != nil {
		return err
	}
	ct, err := readCiphertext(c, pair.Suite)
	if err != nil {
		return err
	}

	msg, ok := ct.Decrypt(pair.Suite, pair.Key)
	if !ok {
		return errors.New("decryption did not succeed")
	}
	fmt.Fprintf(os.Stdout, "%s\n", msg)
	return nil
}

// decryptionShareJSON is the on-disk form of a per-ciphertext decryption
// share, hex-encoded through hexjson.
type decryptionShareJSON struct {
	Index int    `json:"index"`
	Point []byte `json:"point"`
	Suite string `json:"suite"`
}

func shareDecryptCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("share-decrypt needs exactly one key share file argument")
	}
	sh := new(key.Share)
	if err := key.Load(c.Args().First(), sh); err != nil {
		return fmt.Errorf("loading key share: %w", err)
	}
	ct, err := readCiphertext(c, sh.Suite)
	if err != nil {
		return err
	}

	ds := sh.DecryptionShare(ct.U)
	pointBuff, err := ds.Point.MarshalBinary()
	if err != nil {
		return err
	}
	buff, err := json.Marshal(&decryptionShareJSON{
		Index: ds.Index,
		Point: pointBuff,
		Suite: sh.Suite.Name(),
	})
	if err != nil {
		return err
	}
	return writeOut(c, buff)
}

func combineCmd(c *cli.Context) error {
	if !c.IsSet(thresholdFlag.Name) {
		return errors.New("combine needs the --threshold flag")
	}
	if c.NArg() == 0 {
		return errors.New("combine needs decryption share files as arguments")
	}

	var suite *crypto.Suite
	shares := make([]*crypto.DecryptionShare, 0, c.NArg())
	for _, file := range c.Args().Slice() {
		buff, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		var dsj decryptionShareJSON
		if err := json.Unmarshal(buff, &dsj); err != nil {
			return fmt.Errorf("parsing decryption share %s: %w", file, err)
		}
		if suite == nil {
			if suite, err = crypto.SuiteFromName(dsj.Suite); err != nil {
				return err
			}
		}
		point := suite.KeyGroup().Point()
		if err := point.UnmarshalBinary(dsj.Point); err != nil {
			return fmt.Errorf("parsing decryption share %s: %w", file, err)
		}
		shares = append(shares, &crypto.DecryptionShare{Index: dsj.Index, Point: point})
	}

	ct, err := readCiphertext(c, suite)
	if err != nil {
		return err
	}
	dk, err := signcrypt.CombineDecryptionKey(suite, shares, c.Int(thresholdFlag.Name))
	if err != nil {
		return err
	}
	msg, ok := dk.Decrypt(ct)
	if !ok {
		return errors.New("decryption did not succeed")
	}
	fmt.Fprintf(os.Stdout, "%s\n", msg)
	return nil
}

// ciphertextJSON is the display form printed by show, for logging and
// debugging only.
type ciphertextJSON struct {
	U      []byte `json:"u"`
	V      []byte `json:"v"`
	W      []byte `json:"w"`
	Scheme string `json:"scheme"`
}

func showCmd(c *cli.Context) error {
	suite, err := suiteFromFlag(c)
	if err != nil {
		return err
	}
	ct, err := readCiphertext(c, suite)
	if err != nil {
		return err
	}
	uBuff, err := ct.U.MarshalBinary()
	if err != nil {
		return err
	}
	wBuff, err := ct.W.MarshalBinary()
	if err != nil {
		return err
	}
	buff, err := json.Marshal(&ciphertextJSON{
		U:      uBuff,
		V:      ct.V,
		W:      wBuff,
		Scheme: ct.Scheme.String(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s\n", buff)
	return nil
}

// readCiphertext loads a binary ciphertext from the --in file or, when the
// flag is absent, from a hex string on stdin.
func readCiphertext(c *cli.Context, suite signcrypt.Suite) (*signcrypt.Ciphertext, error) {
	var buff []byte
	var err error
	if c.IsSet(inFlag.Name) {
		buff, err = os.ReadFile(c.String(inFlag.Name))
		if err != nil {
			return nil, err
		}
	} else {
		var hexStr string
		if _, err := fmt.Fscan(os.Stdin, &hexStr); err != nil {
			return nil, fmt.Errorf("reading ciphertext from stdin: %w", err)
		}
		if buff, err = hex.DecodeString(strings.TrimSpace(hexStr)); err != nil {
			return nil, err
		}
	}
	return signcrypt.DecodeCiphertext(suite, buff)
}
