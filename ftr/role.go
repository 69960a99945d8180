package ftr

import "strconv"

// Role is a concrete instance of a model in the available pool.
type Role struct {
	InstanceID string
	ModelIri   string
}

// RoleInfo denormalizes a Role with its mobility flag: whether it can carry
// itself (and immobile payloads) between locations. CSP branching and
// timeline construction both need this on every access, so it's kept
// alongside the role rather than re-derived from the model catalogue each
// time (spec §4.3's "RoleInfo", supplemented per SPEC_FULL.md §5.5).
type RoleInfo struct {
	Role     Role
	Mobility bool
}

// ExpandPool generates one Role per unit of count in pool, with a
// deterministic "<modelIri>#<n>" instance ID so role identity is stable
// across repeated expansions of the same pool (needed for CSP space cloning
// to compare role sets structurally).
func ExpandPool(pool ModelPool, mobility map[string]bool) []RoleInfo {
	var infos []RoleInfo
	for modelIri, count := range pool {
		for i := 0; i < count; i++ {
			infos = append(infos, RoleInfo{
				Role:     Role{InstanceID: instanceID(modelIri, i), ModelIri: modelIri},
				Mobility: mobility[modelIri],
			})
		}
	}

	return infos
}

func instanceID(modelIri string, n int) string {
	return modelIri + "#" + strconv.Itoa(n)
}
