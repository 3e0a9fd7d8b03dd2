// Package extract pulls candidate English dictionary words out of free text.
package extract
