package term

// Identifier is a stable, hashable interned name (spec §3). Go string
// comparison and map keys already give us value semantics and structural
// equality for free, so no separate interning table is needed.
type Identifier string
