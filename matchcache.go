package img2dice

// tileKey is the quantized content of a tile, row-major. Dithered tiles
// take at most two values per pixel, so photos repeat keys constantly.
type tileKey [DieSize * DieSize]uint8

// Match is the outcome of matching one tile: the chosen face and rotation
// and the fraction of pixels that differ from their rendering.
type Match struct {
	Face     Face
	Rotation Rotation
	Distance float64
}

// matchCache maps quantized tile content to its exact match. Matching is
// a pure function of the quantized tile, so a hit is always exact.
type matchCache map[tileKey]Match

// addCacheEntry records the match computed for k.
func (m *Matcher) addCacheEntry(k tileKey, match Match) {
	m.lookupMisses++
	if m.lookupTable == nil {
		m.lookupTable = make(matchCache)
	}
	m.lookupTable[k] = match
}

// getCacheEntry returns the cached match for k, if any.
func (m *Matcher) getCacheEntry(k tileKey) (Match, bool) {
	match, found := m.lookupTable[k]
	if found {
		m.lookupHits++
	}
	return match, found
}

// CacheStats returns cache hit/miss statistics.
func (m *Matcher) CacheStats() (hits, misses int, hitRate float64) {
	total := m.lookupHits + m.lookupMisses
	if total == 0 {
		return 0, 0, 0
	}
	return m.lookupHits, m.lookupMisses, float64(m.lookupHits) / float64(total)
}

// ResetCache drops every cached match and zeroes the statistics.
func (m *Matcher) ResetCache() {
	m.lookupTable = make(matchCache)
	m.lookupHits = 0
	m.lookupMisses = 0
}
