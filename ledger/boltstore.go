package ledger

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var (
	bucketShares     = []byte("shares")
	bucketAllowances = []byte("allowances")
	bucketMeta       = []byte("meta")

	metaTotalShares = []byte("total_shares")
	metaInitialized = []byte("initialized")
)

// BoltStore persists ledger snapshots in a bbolt database.
//
// Layout: the shares bucket maps 20-byte principals to big-endian share
// balances; the allowances bucket maps owner||spender (40 bytes) to
// big-endian token amounts; the meta bucket holds the total share count
// and the genesis flag.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ StateStore = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("ledger: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("ledger: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketShares, bucketAllowances, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ledger: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Save replaces the stored snapshot.
func (s *BoltStore) Save(snap *Snapshot) error {
	if snap == nil || snap.TotalShares == nil {
		return ErrCorruptSnapshot
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		// Rewrite both data buckets from scratch so deleted accounts and
		// revoked allowances do not linger.
		for _, name := range [][]byte{bucketShares, bucketAllowances} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("boltstore: reset bucket %q: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("boltstore: recreate bucket %q: %w", name, err)
			}
		}

		sb := tx.Bucket(bucketShares)
		for p, v := range snap.Shares {
			if v == nil || v.Sign() == 0 {
				continue
			}
			if err := sb.Put(p[:], v.Bytes()); err != nil {
				return fmt.Errorf("boltstore: put shares: %w", err)
			}
		}

		ab := tx.Bucket(bucketAllowances)
		for owner, m := range snap.Allowances {
			for spender, a := range m {
				if a == nil || a.Sign() == 0 {
					continue
				}
				if err := ab.Put(allowanceKey(owner, spender), a.Bytes()); err != nil {
					return fmt.Errorf("boltstore: put allowance: %w", err)
				}
			}
		}

		mb := tx.Bucket(bucketMeta)
		if err := mb.Put(metaTotalShares, snap.TotalShares.Bytes()); err != nil {
			return fmt.Errorf("boltstore: put total shares: %w", err)
		}
		flag := []byte{0}
		if snap.Initialized {
			flag[0] = 1
		}
		if err := mb.Put(metaInitialized, flag); err != nil {
			return fmt.Errorf("boltstore: put genesis flag: %w", err)
		}
		return nil
	})
}

// Load returns the stored snapshot, or ErrSnapshotNotFound if Save has
// never been called on this database.
func (s *BoltStore) Load() (*Snapshot, error) {
	snap := &Snapshot{
		Shares:     make(map[Principal]*big.Int),
		Allowances: make(map[Principal]map[Principal]*big.Int),
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		mb := tx.Bucket(bucketMeta)
		total := mb.Get(metaTotalShares)
		if total == nil {
			return ErrSnapshotNotFound
		}
		snap.TotalShares = new(big.Int).SetBytes(total)
		if flag := mb.Get(metaInitialized); len(flag) == 1 && flag[0] == 1 {
			snap.Initialized = true
		}

		err := tx.Bucket(bucketShares).ForEach(func(k, v []byte) error {
			if len(k) != PrincipalLen {
				return fmt.Errorf("%w: share key length %d", ErrCorruptSnapshot, len(k))
			}
			var p Principal
			copy(p[:], k)
			snap.Shares[p] = new(big.Int).SetBytes(v)
			return nil
		})
		if err != nil {
			return err
		}

		return tx.Bucket(bucketAllowances).ForEach(func(k, v []byte) error {
			if len(k) != 2*PrincipalLen {
				return fmt.Errorf("%w: allowance key length %d", ErrCorruptSnapshot, len(k))
			}
			var owner, spender Principal
			copy(owner[:], k[:PrincipalLen])
			copy(spender[:], k[PrincipalLen:])
			m, ok := snap.Allowances[owner]
			if !ok {
				m = make(map[Principal]*big.Int)
				snap.Allowances[owner] = m
			}
			m[spender] = new(big.Int).SetBytes(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// allowanceKey encodes owner||spender as a 40-byte key.
func allowanceKey(owner, spender Principal) []byte {
	k := make([]byte, 2*PrincipalLen)
	copy(k[:PrincipalLen], owner[:])
	copy(k[PrincipalLen:], spender[:])
	return k
}
