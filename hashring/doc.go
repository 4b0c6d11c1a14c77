// Package hashring places servers and keys on a 360° ring and assigns each
// key to the first virtual node at or after its angle, clockwise, wrapping
// past 359° back to the lowest node.
//
// What:
//
//   - Every server owns Replicas virtual nodes. Replica 0 hashes the bare
//     server name, replica i > 0 hashes "name#i".
//   - Virtual nodes are kept in one list sorted by angle, then server name,
//     then replica, so equal angles resolve deterministically.
//   - Locate is a binary search over that list.
//
// Rebalancing:
//
//	Any topology change (AddServer, RemoveServer, SetReplicas) rebuilds the
//	whole virtual-node list and re-assigns every tracked key. The returned
//	Rebalance lists exactly the keys whose owner changed and carries a trace
//	of the rebuild, so a viewer can replay placement and assignment.
//
// Hash:
//
//	DefaultHash is the polynomial string hash h = h*31 + b over the UTF-8
//	bytes in uint32 arithmetic, reduced mod 360. Any deterministic function
//	into [0, 360) may replace it through WithHash.
//
// Concurrency: a Ring is safe for concurrent use.
package hashring
