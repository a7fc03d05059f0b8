package tiles

import "errors"

// ErrTileNotInRack is returned by Consume when the requested multiset
// is not fully available in the rack.
var ErrTileNotInRack = errors.New("tiles: requested tile not in rack")
