// Package catalog caches enumeration results so a group order is searched
// once and served from storage afterwards.
//
// # Stores
//
// A [Store] is a byte-oriented key/value cache with per-entry TTL:
//
//   - [NullStore]: never stores anything; caching disabled.
//   - [FileStore]: one JSON file per entry under a sharded directory tree.
//   - [RedisStore]: github.com/redis/go-redis/v9.
//   - [MongoStore]: go.mongodb.org/mongo-driver, one document per entry.
//
// # Records
//
// [Catalog.Groups] stores a JSON record holding the multiplication tables of
// every group of an order. Records are re-validated on read: each table goes
// through fingroup.New again, and a record that fails to decode or validate
// is deleted and recomputed. Only complete enumerations are written.
//
// Keys are "groups:" followed by the SHA-256 of the record schema version and
// the order, so bumping the schema invalidates old entries.
package catalog
