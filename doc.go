/*
Package vault defines all common interfaces that weave the custody engine
together: identity (addresses and conditions), storage, transactions,
handlers and context accessors.

Look into this package to get a brief overview of the design decisions made
around interfaces and extension building blocks. The actual custody logic
lives in the extensions under x/ and is composed by the app package.
*/
package vault
