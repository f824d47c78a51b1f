package repository

import "go.mongodb.org/mongo-driver/mongo/options"

// findPage builds the Find options for skip/limit pagination. A limit of
// zero means "no paging" and returns everything.
func findPage(skip, limit int64) *options.FindOptions {
	opts := options.Find()
	if limit > 0 {
		opts.SetSkip(skip).SetLimit(limit)
	}
	return opts
}
