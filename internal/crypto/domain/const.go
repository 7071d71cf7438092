package domain

const (
	// SymmetricKeySize is the length in bytes of the AES-256 key.
	SymmetricKeySize = 32

	// BlockSize is the AES block size, which is also the IV length.
	BlockSize = 16

	// FieldVersionPrefix tags every newly encrypted field.
	FieldVersionPrefix = "v1:"

	// BackupMagic opens every framed backup artifact.
	BackupMagic = "PIIB"

	// BackupVersion is the only framed layout this build writes.
	BackupVersion byte = 0x01

	// LegacyBackupSeparator joined wrapped key and payload in unframed artifacts.
	LegacyBackupSeparator = "---"
)
