package service

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"strconv"
)

const (
	minAccountNumber  = 1_000_000_000
	accountNumberSpan = 900_000_000
)

// CryptoIDGenerator реализует IDGenerator на криптостойком источнике случайности.
type CryptoIDGenerator struct{}

func NewCryptoIDGenerator() *CryptoIDGenerator {
	return &CryptoIDGenerator{}
}

// TransactionID возвращает 32 hex-символа. Идентификатор непрозрачный и никогда
// не переиспользуется, внутренний id транзакции наружу не отдается.
func (g *CryptoIDGenerator) TransactionID() string {
	buf := make([]byte, 16)
	mustRead(buf)
	return hex.EncodeToString(buf)
}

// AccountNumber возвращает случайный 10-значный номер счета. Уникальность здесь
// не гарантируется - коллизию ловит уникальный индекс в базе.
func (g *CryptoIDGenerator) AccountNumber() string {
	buf := make([]byte, 8)
	mustRead(buf)
	n := binary.BigEndian.Uint64(buf)%accountNumberSpan + minAccountNumber
	return strconv.FormatUint(n, 10)
}

func mustRead(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
}
