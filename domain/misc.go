package domain

import (
	"math/big"
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is a hex encoded account or contract address
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// AssetId identifies one token of one collection
type AssetId struct {
	Collection Address `json:"collection" bson:"collection"`
	TokenId    TokenId `json:"tokenId" bson:"tokenId"`
}

// Normalize lower cases the collection address
func (id AssetId) Normalize() AssetId {
	return AssetId{Collection: id.Collection.ToLower(), TokenId: id.TokenId}
}

func (id AssetId) String() string {
	return id.Collection.ToLowerStr() + "/" + id.TokenId.String()
}

// ParseAmount parses a positive base-10 integer amount
func ParseAmount(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() <= 0 {
		return nil, ErrBadParamInput
	}
	return n, nil
}

// ParseBalance parses a non negative base-10 integer, "" reads as zero
func ParseBalance(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, ErrBadParamInput
	}
	return n, nil
}
