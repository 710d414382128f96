package services

import (
	"context"
	"errors"
	"log"

	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/repository"
)

// BookRequestService определяет интерфейс для сервиса заявок на книги.
type BookRequestService interface {
	RequestBook(bookID, userID int64, requestType string) (*models.BookRequest, error)
}

// Убедимся, что bookRequestService удовлетворяет интерфейсу BookRequestService.
var _ BookRequestService = (*bookRequestService)(nil)

type bookRequestService struct {
	requestRepo repository.BookRequestRepository // Зависимость от репозитория заявок
}

// NewBookRequestService создает новый экземпляр сервиса заявок.
func NewBookRequestService(requestRepo repository.BookRequestRepository) BookRequestService {
	return &bookRequestService{requestRepo: requestRepo}
}

// RequestBook оформляет заявку на покупку или аренду книги.
// Тип заявки записывается как есть: и покупка, и аренда списывают ровно одну
// единицу запаса, различие нужно для последующей отчетности.
func (s *bookRequestService) RequestBook(bookID, userID int64, requestType string) (*models.BookRequest, error) {
	ctx := context.Background()

	if requestType != models.RequestTypeSale && requestType != models.RequestTypeRent {
		log.Printf("[RequestService] Отклонена заявка с неизвестным типом '%s'", requestType)
		return nil, ErrInvalidRequestType
	}

	request, err := s.requestRepo.ReserveBook(ctx, bookID, userID, requestType)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			return nil, ErrBookNotFound
		case errors.Is(err, repository.ErrOutOfStock):
			// Бизнес-отказ, а не сбой системы; отличим его от "не найдено"
			return nil, ErrOutOfStock
		default:
			log.Printf("[RequestService] Ошибка оформления заявки на книгу %d: %v", bookID, err)
			return nil, errors.New("внутренняя ошибка сервера при оформлении заявки")
		}
	}

	log.Printf("[RequestService] Заявка %d (%s) на книгу %d от пользователя %d оформлена",
		request.ID, requestType, bookID, userID)
	return request, nil
}

// Кастомные ошибки сервиса заявок.
var (
	ErrOutOfStock         = errors.New("запас книги исчерпан")
	ErrInvalidRequestType = errors.New("неизвестный тип заявки")
)
