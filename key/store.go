package key

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"

	"github.com/LF-Decentralized-Trust-labs/agora-blsful/common/log"
	"github.com/LF-Decentralized-Trust-labs/agora-blsful/fs"
)

// Store abstracts the loading and saving of any cryptographic material used
// by the signcryption tooling. For the moment, only a file based store is
// implemented.
type Store interface {
	SaveKeyPair(p *Pair) error
	LoadKeyPair() (*Pair, error)
	SaveShare(s *Share) error
	LoadShare() (*Share, error)
}

// ErrStoreFile is returned when a requested file is absent or unreadable.
var ErrStoreFile = errors.New("store file issues")

const keyFolderName = "key"
const keyFileName = "signcrypt_id"
const privateExtension = ".private"
const publicExtension = ".public"
const shareFileName = "signcrypt_share.private"

// Tomler represents any struct that can be (un)marshaled into/from toml format
type Tomler interface {
	TOML() interface{}
	FromTOML(i interface{}) error
	TOMLValue() interface{}
}

// fileStore stores the key material in TOML files under a base folder,
// private parts with tight permissions.
type fileStore struct {
	baseFolder  string
	privateFile string
	publicFile  string
	shareFile   string
	log         log.Logger
}

// NewFileStore is used to create the config folder and all the subfolders.
// If a folder already exists, we simply check the rights; a folder with the
// wrong permissions is an error rather than a fallback location, since the
// store holds private key material.
func NewFileStore(baseFolder string, l log.Logger) (Store, error) {
	store := &fileStore{baseFolder: baseFolder, log: l}
	keyFolder := fs.CreateSecureFolder(path.Join(baseFolder, keyFolderName))
	if keyFolder == "" {
		return nil, fmt.Errorf("could not secure key folder %s", path.Join(baseFolder, keyFolderName))
	}
	store.privateFile = path.Join(keyFolder, keyFileName+privateExtension)
	store.publicFile = path.Join(keyFolder, keyFileName+publicExtension)
	store.shareFile = path.Join(keyFolder, shareFileName)
	return store, nil
}

// SaveKeyPair first saves the private key in a file with tight permissions
// and then saves the public part in another file.
func (f *fileStore) SaveKeyPair(p *Pair) error {
	if err := Save(f.privateFile, p, true); err != nil {
		return err
	}
	f.log.Infow("saved key pair", "private", f.privateFile, "public", f.publicFile)
	return Save(f.publicFile, p.Identity(), false)
}

// LoadKeyPair decodes the private key pair.
func (f *fileStore) LoadKeyPair() (*Pair, error) {
	p := new(Pair)
	if err := Load(f.privateFile, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SaveShare saves the private share in a file with tight permissions.
func (f *fileStore) SaveShare(s *Share) error {
	f.log.Infow("saving private share", "file", f.shareFile)
	return Save(f.shareFile, s, true)
}

// LoadShare loads the private share.
func (f *fileStore) LoadShare() (*Share, error) {
	s := new(Share)
	return s, Load(f.shareFile, s)
}

// Save the given Tomler interface to the given path. If secure is true, the
// file will have a 0600 security.
func Save(filePath string, t Tomler, secure bool) error {
	var fd *os.File
	var err error
	if secure {
		fd, err = fs.CreateSecureFile(filePath)
	} else {
		fd, err = os.Create(filePath)
	}
	if err != nil {
		return fmt.Errorf("can't save to %s: %w", filePath, err)
	}
	defer fd.Close()
	return toml.NewEncoder(fd).Encode(t.TOML())
}

// Load the given Tomler from the given file path.
func Load(filePath string, t Tomler) error {
	tomlValue := t.TOMLValue()
	if _, err := toml.DecodeFile(filePath, tomlValue); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFile, err)
	}
	return t.FromTOML(tomlValue)
}
