// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

// Limits on transaction fields, fixed by the network protocol.
const (
	// MaxOperationsPerTransaction caps the operation list.
	MaxOperationsPerTransaction = 100

	// MaxSignaturesPerEnvelope caps the signature list on an envelope.
	MaxSignaturesPerEnvelope = 20

	// SignatureMaxLength is the maximum byte length of one signature.
	SignatureMaxLength = 64
)

// TimeBounds is the closed validity window of a transaction, in
// seconds since the Unix epoch. MaxTime 0 means no upper bound.
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

// EncodeTo writes the lower then upper bound.
func (tb TimeBounds) EncodeTo(e *Encoder) error {
	e.WriteUint64(tb.MinTime)
	e.WriteUint64(tb.MaxTime)
	return nil
}

// DecodeFrom reads the lower then upper bound.
func (tb *TimeBounds) DecodeFrom(d *Decoder) error {
	var err error
	if tb.MinTime, err = d.ReadUint64(); err != nil {
		return err
	}
	tb.MaxTime, err = d.ReadUint64()
	return err
}

// Transaction is the unit of change submitted to the network: a source
// account, sequencing and fee data, an optional validity window, a
// memo, and up to 100 operations.
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        int64
	TimeBounds    *TimeBounds
	Memo          Memo
	Operations    []Operation
	Ext           ExtensionPoint
}

// EncodeTo writes all fields in declaration order.
func (tx Transaction) EncodeTo(e *Encoder) error {
	if err := tx.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	e.WriteUint32(tx.Fee)
	e.WriteInt64(tx.SeqNum)
	e.WritePresence(tx.TimeBounds != nil)
	if tx.TimeBounds != nil {
		if err := tx.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := tx.Memo.EncodeTo(e); err != nil {
		return err
	}
	if err := e.WriteLength(len(tx.Operations), MaxOperationsPerTransaction); err != nil {
		return err
	}
	for _, op := range tx.Operations {
		if err := op.EncodeTo(e); err != nil {
			return err
		}
	}
	return tx.Ext.EncodeTo(e)
}

// DecodeFrom reads all fields in declaration order.
func (tx *Transaction) DecodeFrom(d *Decoder) error {
	var err error
	if tx.SourceAccount, err = DecodeMuxedAccount(d); err != nil {
		return err
	}
	if tx.Fee, err = d.ReadUint32(); err != nil {
		return err
	}
	if tx.SeqNum, err = d.ReadInt64(); err != nil {
		return err
	}
	present, err := d.ReadPresence()
	if err != nil {
		return err
	}
	tx.TimeBounds = nil
	if present {
		tx.TimeBounds = new(TimeBounds)
		if err := tx.TimeBounds.DecodeFrom(d); err != nil {
			return err
		}
	}
	if tx.Memo, err = DecodeMemo(d); err != nil {
		return err
	}
	count, err := d.ReadLength(MaxOperationsPerTransaction)
	if err != nil {
		return err
	}
	tx.Operations = nil
	for i := uint32(0); i < count; i++ {
		var op Operation
		if err := op.DecodeFrom(d); err != nil {
			return err
		}
		tx.Operations = append(tx.Operations, op)
	}
	return tx.Ext.DecodeFrom(d)
}

// DecoratedSignature pairs a signature with the last four bytes of the
// signing key, so verifiers can find the key without trying all of
// them.
type DecoratedSignature struct {
	Hint      [4]byte
	Signature []byte
}

// EncodeTo writes the fixed hint then the variable signature.
func (s DecoratedSignature) EncodeTo(e *Encoder) error {
	e.WriteFixedOpaque(s.Hint[:])
	return e.WriteOpaque(s.Signature, SignatureMaxLength)
}

// DecodeFrom reads the fixed hint then the variable signature.
func (s *DecoratedSignature) DecodeFrom(d *Decoder) error {
	hint, err := d.ReadFixedOpaque(len(s.Hint))
	if err != nil {
		return err
	}
	copy(s.Hint[:], hint)
	s.Signature, err = d.ReadOpaque(SignatureMaxLength)
	return err
}

// TransactionV1Envelope is a transaction plus the signatures
// authorizing it.
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

// EncodeTo writes the transaction then the signature list.
func (env TransactionV1Envelope) EncodeTo(e *Encoder) error {
	if err := env.Tx.EncodeTo(e); err != nil {
		return err
	}
	if err := e.WriteLength(len(env.Signatures), MaxSignaturesPerEnvelope); err != nil {
		return err
	}
	for _, sig := range env.Signatures {
		if err := sig.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFrom reads the transaction then the signature list.
func (env *TransactionV1Envelope) DecodeFrom(d *Decoder) error {
	if err := env.Tx.DecodeFrom(d); err != nil {
		return err
	}
	count, err := d.ReadLength(MaxSignaturesPerEnvelope)
	if err != nil {
		return err
	}
	env.Signatures = nil
	for i := uint32(0); i < count; i++ {
		var sig DecoratedSignature
		if err := sig.DecodeFrom(d); err != nil {
			return err
		}
		env.Signatures = append(env.Signatures, sig)
	}
	return nil
}

// EnvelopeType discriminates TransactionEnvelope, and is also hashed
// into signature payloads to domain-separate them. Wire values match
// the network protocol.
type EnvelopeType int32

const (
	EnvelopeTypeTx        EnvelopeType = 2
	EnvelopeTypeTxFeeBump EnvelopeType = 5
)

func (t EnvelopeType) String() string {
	switch t {
	case EnvelopeTypeTx:
		return "ENVELOPE_TYPE_TX"
	case EnvelopeTypeTxFeeBump:
		return "ENVELOPE_TYPE_TX_FEE_BUMP"
	}
	return "ENVELOPE_TYPE_UNKNOWN"
}

// FeeBumpTransaction wraps an already-signed v1 envelope, replacing
// its fee. The inner transaction is a single-arm union over
// ENVELOPE_TYPE_TX.
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       int64
	InnerTx   TransactionV1Envelope
	Ext       ExtensionPoint
}

// EncodeTo writes the fee source, fee, inner envelope (with its
// single-arm union discriminant), and extension point.
func (tx FeeBumpTransaction) EncodeTo(e *Encoder) error {
	if err := tx.FeeSource.EncodeTo(e); err != nil {
		return err
	}
	e.WriteInt64(tx.Fee)
	e.WriteInt32(int32(EnvelopeTypeTx))
	if err := tx.InnerTx.EncodeTo(e); err != nil {
		return err
	}
	return tx.Ext.EncodeTo(e)
}

// DecodeFrom reads the fields in order, rejecting any inner envelope
// discriminant other than ENVELOPE_TYPE_TX.
func (tx *FeeBumpTransaction) DecodeFrom(d *Decoder) error {
	var err error
	if tx.FeeSource, err = DecodeMuxedAccount(d); err != nil {
		return err
	}
	if tx.Fee, err = d.ReadInt64(); err != nil {
		return err
	}
	disc, err := d.ReadInt32()
	if err != nil {
		return err
	}
	if EnvelopeType(disc) != EnvelopeTypeTx {
		return &UnknownDiscriminantError{Type: "FeeBumpTransaction.InnerTx", Discriminant: disc}
	}
	if err := tx.InnerTx.DecodeFrom(d); err != nil {
		return err
	}
	return tx.Ext.DecodeFrom(d)
}

// FeeBumpTransactionEnvelope is a fee-bump transaction plus the
// signatures of the fee source.
type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

// EncodeTo writes the transaction then the signature list.
func (env FeeBumpTransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := env.Tx.EncodeTo(e); err != nil {
		return err
	}
	if err := e.WriteLength(len(env.Signatures), MaxSignaturesPerEnvelope); err != nil {
		return err
	}
	for _, sig := range env.Signatures {
		if err := sig.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFrom reads the transaction then the signature list.
func (env *FeeBumpTransactionEnvelope) DecodeFrom(d *Decoder) error {
	if err := env.Tx.DecodeFrom(d); err != nil {
		return err
	}
	count, err := d.ReadLength(MaxSignaturesPerEnvelope)
	if err != nil {
		return err
	}
	env.Signatures = nil
	for i := uint32(0); i < count; i++ {
		var sig DecoratedSignature
		if err := sig.DecodeFrom(d); err != nil {
			return err
		}
		env.Signatures = append(env.Signatures, sig)
	}
	return nil
}

// TransactionEnvelope is the top-level signed transaction union: a
// plain v1 envelope or a fee bump wrapping one.
type TransactionEnvelope interface {
	Encodable
	// EnvelopeType returns the discriminant selecting this arm.
	EnvelopeType() EnvelopeType
	isTransactionEnvelope()
}

// EnvelopeV1 is the ENVELOPE_TYPE_TX arm.
type EnvelopeV1 struct {
	V1 TransactionV1Envelope
}

func (EnvelopeV1) EnvelopeType() EnvelopeType { return EnvelopeTypeTx }
func (EnvelopeV1) isTransactionEnvelope()     {}

// EncodeTo writes the discriminant and the v1 envelope.
func (env EnvelopeV1) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(EnvelopeTypeTx))
	return env.V1.EncodeTo(e)
}

// EnvelopeFeeBump is the ENVELOPE_TYPE_TX_FEE_BUMP arm.
type EnvelopeFeeBump struct {
	FeeBump FeeBumpTransactionEnvelope
}

func (EnvelopeFeeBump) EnvelopeType() EnvelopeType { return EnvelopeTypeTxFeeBump }
func (EnvelopeFeeBump) isTransactionEnvelope()     {}

// EncodeTo writes the discriminant and the fee-bump envelope.
func (env EnvelopeFeeBump) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(EnvelopeTypeTxFeeBump))
	return env.FeeBump.EncodeTo(e)
}

// DecodeTransactionEnvelope reads a TransactionEnvelope union.
func DecodeTransactionEnvelope(d *Decoder) (TransactionEnvelope, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch EnvelopeType(disc) {
	case EnvelopeTypeTx:
		var env EnvelopeV1
		if err := env.V1.DecodeFrom(d); err != nil {
			return nil, err
		}
		return env, nil
	case EnvelopeTypeTxFeeBump:
		var env EnvelopeFeeBump
		if err := env.FeeBump.DecodeFrom(d); err != nil {
			return nil, err
		}
		return env, nil
	}
	return nil, &UnknownDiscriminantError{Type: "TransactionEnvelope", Discriminant: disc}
}
