// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package xdr

// OperationType discriminates OperationBody. The constants keep the
// network's wire values, which is why they are not contiguous here:
// this package implements a subset of the full operation set.
type OperationType int32

const (
	OperationTypeCreateAccount OperationType = 0
	OperationTypePayment       OperationType = 1
	OperationTypeManageData    OperationType = 10
	OperationTypeBumpSequence  OperationType = 11
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeCreateAccount:
		return "CREATE_ACCOUNT"
	case OperationTypePayment:
		return "PAYMENT"
	case OperationTypeManageData:
		return "MANAGE_DATA"
	case OperationTypeBumpSequence:
		return "BUMP_SEQUENCE"
	}
	return "OPERATION_TYPE_UNKNOWN"
}

// Limits on ManageData fields, fixed by the network protocol.
const (
	DataNameMaxLength  = 64
	DataValueMaxLength = 64
)

// OperationBody is the union of per-operation payloads.
type OperationBody interface {
	Encodable
	// OperationType returns the discriminant selecting this arm.
	OperationType() OperationType
	isOperationBody()
}

// CreateAccount funds a new account with a starting balance.
type CreateAccount struct {
	Destination     AccountID
	StartingBalance int64
}

func (CreateAccount) OperationType() OperationType { return OperationTypeCreateAccount }
func (CreateAccount) isOperationBody()             {}

// EncodeTo writes the discriminant, destination, and balance.
func (op CreateAccount) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(OperationTypeCreateAccount))
	if err := op.Destination.EncodeTo(e); err != nil {
		return err
	}
	e.WriteInt64(op.StartingBalance)
	return nil
}

// Payment sends an amount of an asset to a destination account.
type Payment struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

func (Payment) OperationType() OperationType { return OperationTypePayment }
func (Payment) isOperationBody()             {}

// EncodeTo writes the discriminant, destination, asset, and amount.
func (op Payment) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(OperationTypePayment))
	if err := op.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := op.Asset.EncodeTo(e); err != nil {
		return err
	}
	e.WriteInt64(op.Amount)
	return nil
}

// ManageData sets, updates, or (with a nil Value) deletes a named data
// entry on the source account.
type ManageData struct {
	Name  string
	Value *[]byte
}

func (ManageData) OperationType() OperationType { return OperationTypeManageData }
func (ManageData) isOperationBody()             {}

// EncodeTo writes the discriminant, the name, and the optional value.
func (op ManageData) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(OperationTypeManageData))
	if err := e.WriteString(op.Name, DataNameMaxLength); err != nil {
		return err
	}
	e.WritePresence(op.Value != nil)
	if op.Value != nil {
		return e.WriteOpaque(*op.Value, DataValueMaxLength)
	}
	return nil
}

// BumpSequence advances the source account's sequence number.
type BumpSequence struct {
	BumpTo int64
}

func (BumpSequence) OperationType() OperationType { return OperationTypeBumpSequence }
func (BumpSequence) isOperationBody()             {}

// EncodeTo writes the discriminant and the target sequence number.
func (op BumpSequence) EncodeTo(e *Encoder) error {
	e.WriteInt32(int32(OperationTypeBumpSequence))
	e.WriteInt64(op.BumpTo)
	return nil
}

// DecodeOperationBody reads an OperationBody union.
func DecodeOperationBody(d *Decoder) (OperationBody, error) {
	disc, err := d.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch OperationType(disc) {
	case OperationTypeCreateAccount:
		var op CreateAccount
		if err := op.Destination.DecodeFrom(d); err != nil {
			return nil, err
		}
		if op.StartingBalance, err = d.ReadInt64(); err != nil {
			return nil, err
		}
		return op, nil
	case OperationTypePayment:
		var op Payment
		if op.Destination, err = DecodeMuxedAccount(d); err != nil {
			return nil, err
		}
		if op.Asset, err = DecodeAsset(d); err != nil {
			return nil, err
		}
		if op.Amount, err = d.ReadInt64(); err != nil {
			return nil, err
		}
		return op, nil
	case OperationTypeManageData:
		var op ManageData
		if op.Name, err = d.ReadString(DataNameMaxLength); err != nil {
			return nil, err
		}
		present, err := d.ReadPresence()
		if err != nil {
			return nil, err
		}
		if present {
			value, err := d.ReadOpaque(DataValueMaxLength)
			if err != nil {
				return nil, err
			}
			op.Value = &value
		}
		return op, nil
	case OperationTypeBumpSequence:
		var op BumpSequence
		if op.BumpTo, err = d.ReadInt64(); err != nil {
			return nil, err
		}
		return op, nil
	}
	return nil, &UnknownDiscriminantError{Type: "OperationBody", Discriminant: disc}
}

// Operation pairs an optional per-operation source account with the
// operation payload.
type Operation struct {
	SourceAccount MuxedAccount // nil means the transaction's source
	Body          OperationBody
}

// EncodeTo writes the optional source account then the body union.
func (op Operation) EncodeTo(e *Encoder) error {
	e.WritePresence(op.SourceAccount != nil)
	if op.SourceAccount != nil {
		if err := op.SourceAccount.EncodeTo(e); err != nil {
			return err
		}
	}
	return op.Body.EncodeTo(e)
}

// DecodeFrom reads the optional source account then the body union.
func (op *Operation) DecodeFrom(d *Decoder) error {
	present, err := d.ReadPresence()
	if err != nil {
		return err
	}
	op.SourceAccount = nil
	if present {
		if op.SourceAccount, err = DecodeMuxedAccount(d); err != nil {
			return err
		}
	}
	op.Body, err = DecodeOperationBody(d)
	return err
}
