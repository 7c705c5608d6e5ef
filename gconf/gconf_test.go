package gconf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	vault "github.com/emmanuelJet/MultiSigEnterpriseVault"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/errors"
	"github.com/emmanuelJet/MultiSigEnterpriseVault/store"
)

// textConf is a minimal Configuration implementation, serializing to its
// raw payload.
type textConf struct {
	Payload string
}

func (c *textConf) Marshal() ([]byte, error) {
	return []byte(c.Payload), nil
}

func (c *textConf) Unmarshal(raw []byte) error {
	c.Payload = string(raw)
	return nil
}

func (c *textConf) Validate() error {
	if c.Payload == "" {
		return errors.Wrap(errors.ErrEmpty, "payload")
	}
	return nil
}

func (c *textConf) UnmarshalJSON(raw []byte) error {
	var payload string
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}
	c.Payload = payload
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	src := textConf{Payload: "all is custody"}
	assert.NoError(t, Save(db, "mypkg", &src))

	var got textConf
	assert.NoError(t, Load(db, "mypkg", &got))
	assert.Equal(t, src, got)
}

func TestSaveInvalidConfiguration(t *testing.T) {
	db := store.MemStore()
	err := Save(db, "mypkg", &textConf{})
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestLoadMissingConfiguration(t *testing.T) {
	db := store.MemStore()
	var got textConf
	err := Load(db, "mypkg", &got)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestConfigurationIsPerPackage(t *testing.T) {
	db := store.MemStore()
	assert.NoError(t, Save(db, "first", &textConf{Payload: "a"}))
	assert.NoError(t, Save(db, "second", &textConf{Payload: "b"}))

	var got textConf
	assert.NoError(t, Load(db, "first", &got))
	assert.Equal(t, "a", got.Payload)
	assert.NoError(t, Load(db, "second", &got))
	assert.Equal(t, "b", got.Payload)
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := vault.Options{
		"conf": json.RawMessage(`{"mypkg": "from genesis"}`),
	}

	var conf textConf
	assert.NoError(t, InitConfig(db, opts, "mypkg", &conf))

	var got textConf
	assert.NoError(t, Load(db, "mypkg", &got))
	assert.Equal(t, "from genesis", got.Payload)
}

func TestInitConfigMissingEntry(t *testing.T) {
	db := store.MemStore()
	opts := vault.Options{
		"conf": json.RawMessage(`{}`),
	}

	var conf textConf
	err := InitConfig(db, opts, "mypkg", &conf)
	assert.True(t, errors.ErrNotFound.Is(err))
}
