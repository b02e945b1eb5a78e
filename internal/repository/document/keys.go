package document

// Keyspace: <namespace>:<collection>:<id> hashes indexed by <namespace>:<collection>:idx.

func collectionPrefix(namespace, collection string) string {
	return namespace + ":" + collection + ":"
}

func docKey(namespace, collection, id string) string {
	return collectionPrefix(namespace, collection) + id
}

func indexName(namespace, collection string) string {
	return collectionPrefix(namespace, collection) + "idx"
}
