/*
Package app assembles the custody engine out of the extension packages.

It provides a message Router, a Decorator chain with savepoint, logging
and panic recovery, genesis initialization, and NewVault, which wires
the cash ledger and the custody extension into a single facade the
hosting process can drive.
*/
package app
