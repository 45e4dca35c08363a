// Package source provides the markup of the technical reports index.
//
// The Provider reads the document from a local cache file when it exists.
// Otherwise it fetches the document over HTTP, stores it in the cache and
// returns it. The cache never expires: delete the file to fetch again.
//
// Failed requests are not retried. Any transport failure or HTTP error
// status is returned wrapped in ErrTransport.
package source
