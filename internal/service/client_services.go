// Package service holds the vault logic: the master password gate, the
// encrypted account store and the vault orchestration on top of both.
package service

import (
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/crypto"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/otp"
	"github.com/MKhiriev/go-otp-keeper/internal/otpauth"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/internal/validators"
	"github.com/MKhiriev/go-otp-keeper/internal/workers"
)

type ClientServices struct {
	Gate     MasterPasswordGate
	Accounts AccountStore
	Vault    VaultService
	Engine   *otp.Engine

	// Queue serializes account mutations. It must be running before the
	// vault is opened.
	Queue *workers.Queue
}

func NewClientServices(kv store.KeyValueStore, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	queue := workers.NewQueue(workers.DefaultQueueSize)

	gate := NewMasterPasswordGate(kv, cfg.Auth, log.GetChildLogger("gate"))
	accounts := NewAccountStore(
		kv,
		crypto.NewVaultCipher(),
		validators.NewAccountValidator(),
		queue,
		utils.NewUUIDGenerator(),
		log.GetChildLogger("accounts"),
	)

	return &ClientServices{
		Gate:     gate,
		Accounts: accounts,
		Vault:    NewVaultService(gate, accounts, otpauth.NewParser(), log.GetChildLogger("vault")),
		Engine:   otp.NewEngine(),
		Queue:    queue,
	}
}
