/*
Package vaulttest provides mocks and test doubles for testing the vault
engine and its extensions.
*/
package vaulttest
