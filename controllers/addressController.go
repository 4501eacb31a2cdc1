package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"
	"hoaki-food-ordering/services"

	"github.com/gin-gonic/gin"
)

var addressService *services.AddressService = services.NewAddressService(
	repositories.NewAddressRepository(database.Client),
	database.NewTxRunner(database.Client),
)

func GetAddresses() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		addresses, err := addressService.ListByUser(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

func GetDefaultAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		address, err := addressService.GetDefault(ctx, uid)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no default address"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the default address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// SaveAddress inserts when no address_id is given, updates otherwise.
func SaveAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var address models.Address
		if err := c.BindJSON(&address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		address.User_id = uid
		if err := validate.Struct(&address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := addressService.Save(ctx, &address)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "address was not saved"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

func SetDefaultAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		addressId := c.Param("address_id")
		if err := addressService.SetDefault(ctx, addressId, uid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "default address update failed"})
			return
		}
		// A missing address id is a silent no-op, so this always reports ok.
		c.JSON(http.StatusOK, gin.H{"message": "default address updated"})
	}
}

func DeleteAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		addressId := c.Param("address_id")
		err := addressService.Delete(ctx, addressId, uid)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "address was not deleted"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "address deleted"})
	}
}
