package di

import (
	paymentRepository "hostel/internal/domains/payment/repository"
	roomRepository "hostel/internal/domains/room/repository"
	studentRepository "hostel/internal/domains/student/repository"
)

// The booking workflow depends on the narrow ledger, store and tracker ports. Wire does
// not bind an interface to another interface, so the full repositories are narrowed here.

func provideLedger(repo roomRepository.Room) roomRepository.Ledger { return repo }

func provideStore(repo paymentRepository.Payment) paymentRepository.Store { return repo }

func provideTracker(repo studentRepository.Student) studentRepository.Tracker { return repo }
