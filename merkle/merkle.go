// Package merkle builds batch commitment roots over ordered leaf digests and
// issues and verifies inclusion proofs.
//
// Node hashing is positional: parent = keccak256(left || right), with the
// left/right order fixed by tree position and recorded in each proof step.
// The odd-leaf policy is promotion: at every level, an unpaired last node is
// carried up unchanged, with no self-duplication. Both choices are protocol
// constants; a generator or verifier using a different rule produces
// incompatible roots and proofs.
package merkle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	nova402 "github.com/nova402/nova402-go"
	"github.com/nova402/nova402-go/hashing"
)

// ProofStep is one element of an inclusion proof: a sibling digest and the
// side it sits on. Left means the sibling is the left operand of the parent
// hash, i.e. parent = keccak256(sibling || accumulator).
type ProofStep struct {
	Sibling common.Hash
	Left    bool
}

// Proof is the ordered, leaf-to-root sequence of sibling steps needed to
// recompute the root from one leaf. Levels where the leaf's ancestor was
// promoted without a sibling contribute no step.
type Proof []ProofStep

// Tree is an ephemeral Merkle tree over an ordered sequence of leaf digests.
// Trees are rebuilt per batch and never persisted.
type Tree struct {
	layers [][]common.Hash
}

// NewTree builds a tree over the leaves. The leaf order is significant.
// Returns ErrInvalidInput for an empty leaf sequence.
func NewTree(leaves []common.Hash) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("%w: merkle tree requires at least one leaf", nova402.ErrInvalidInput)
	}

	layers := [][]common.Hash{append([]common.Hash(nil), leaves...)}
	for current := layers[0]; len(current) > 1; current = layers[len(layers)-1] {
		next := make([]common.Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, hashing.Keccak256Hash(current[i][:], current[i+1][:]))
			} else {
				// Unpaired last node: promote unchanged.
				next = append(next, current[i])
			}
		}
		layers = append(layers, next)
	}
	return &Tree{layers: layers}, nil
}

// Root returns the single digest summarizing the batch. For a one-leaf tree
// the root is the leaf itself.
func (t *Tree) Root() common.Hash {
	return t.layers[len(t.layers)-1][0]
}

// LeafCount returns the number of leaves the tree was built over.
func (t *Tree) LeafCount() int {
	return len(t.layers[0])
}

// Prove returns the inclusion proof for the leaf at index.
// Returns ErrInvalidInput if index is out of range.
func (t *Tree) Prove(index int) (Proof, error) {
	if index < 0 || index >= t.LeafCount() {
		return nil, fmt.Errorf("%w: leaf index %d out of range for %d leaves", nova402.ErrInvalidInput, index, t.LeafCount())
	}

	proof := Proof{}
	idx := index
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := idx ^ 1
		if sibling < len(layer) {
			proof = append(proof, ProofStep{
				Sibling: layer[sibling],
				Left:    idx%2 == 1,
			})
		}
		idx /= 2
	}
	return proof, nil
}

// BuildRoot computes the commitment root over the leaves without retaining
// the tree. Returns ErrInvalidInput for an empty leaf sequence.
func BuildRoot(leaves []common.Hash) (common.Hash, error) {
	t, err := NewTree(leaves)
	if err != nil {
		return common.Hash{}, err
	}
	return t.Root(), nil
}

// VerifyProof reports whether proof demonstrates that leaf sits at index in
// the batch committed to by root.
//
// The index is redundant with the per-step side bits and must be consistent
// with them: a step claiming a left sibling while the running index is odd on
// no reachable level is a caller error and fails verification rather than
// being silently resolved. Promotion levels (an even-index node carried up
// without a sibling) consume no proof step; they are recognized when the next
// step's side disagrees with an even running index.
func VerifyProof(leaf common.Hash, proof Proof, root common.Hash, index int) bool {
	if index < 0 {
		return false
	}

	acc := leaf
	idx := index
	for _, step := range proof {
		for idx%2 == 0 && step.Left {
			if idx == 0 {
				// No further level can make this step's side consistent
				// with the claimed index.
				return false
			}
			idx /= 2
		}
		if idx%2 == 1 && !step.Left {
			return false
		}
		if step.Left {
			acc = hashing.Keccak256Hash(step.Sibling[:], acc[:])
		} else {
			acc = hashing.Keccak256Hash(acc[:], step.Sibling[:])
		}
		idx /= 2
	}
	return acc == root
}
