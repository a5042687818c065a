package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/model"
	"blog-api/pkg/password"
)

func TestCreateUser_Success(t *testing.T) {
	router, db := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice",
		"password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataMap(t, decode(t, w))
	assert.Equal(t, "alice", data["username"])
	assert.NotZero(t, data["id"])

	// 入库的是哈希而不是明文
	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "supersecret123", user.PasswordHash)
	assert.True(t, password.Verify("supersecret123", user.PasswordHash))
}

func TestCreateUser_ValidationErrorsCollected(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "ab",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := decode(t, w)
	require.Len(t, e.Errors, 2)
	assert.Equal(t, "username", e.Errors[0].Field)
	assert.Equal(t, "password", e.Errors[1].Field)
}

func TestCreateUser_WhitespacePaddedUsernameRejected(t *testing.T) {
	router, db := setupTestAPI(t)

	// 去空白后长度不足3，必须在校验阶段被拒绝
	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "  a  ",
		"password": "supersecret123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	e := decode(t, w)
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "username", e.Errors[0].Field)

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateUser_UsernameTrimmed(t *testing.T) {
	router, db := setupTestAPI(t)

	// 前后空白归一化后入库
	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "  alice  ",
		"password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataMap(t, decode(t, w))
	assert.Equal(t, "alice", data["username"])

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	router, db := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice", "password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var before model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&before).Error)

	w = performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice", "password": "anotherpass456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// 已有行未被改动，也没有多出新行
	var after model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&after).Error)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateUser_PasswordOnly(t *testing.T) {
	router, db := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice", "password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var before model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&before).Error)

	w = performRequest(router, http.MethodPut, "/update", map[string]interface{}{
		"id": before.ID, "password": "newpassword123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, decode(t, w))
	assert.Equal(t, "alice", data["username"])

	// 用户名保持不变，密码哈希已更换
	var after model.User
	require.NoError(t, db.First(&after, before.ID).Error)
	assert.Equal(t, "alice", after.Username)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	assert.True(t, password.Verify("newpassword123", after.PasswordHash))
}

func TestUpdateUser_MissingID(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := performRequest(router, http.MethodPut, "/update", map[string]interface{}{
		"username": "newname",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser_UnknownID(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := performRequest(router, http.MethodPut, "/update", map[string]interface{}{
		"id": 999, "password": "newpassword123",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeleteUser_Success(t *testing.T) {
	router, db := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice", "password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)

	w = performRequest(router, http.MethodDelete, "/delete", map[string]interface{}{"id": user.ID})
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, decode(t, w))
	assert.Equal(t, "alice", data["username"])

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteUser_MissingID(t *testing.T) {
	router, _ := setupTestAPI(t)

	w := performRequest(router, http.MethodDelete, "/delete", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser_RestrictedWhenPostsExist(t *testing.T) {
	router, db := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice", "password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)

	w = performRequest(router, http.MethodPost, "/category", map[string]interface{}{"name": "golang"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodPost, "/insert-post", map[string]interface{}{
		"title": "Post", "authorId": user.ID, "categoryId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// 有文章引用时拒绝删除，行保留
	w = performRequest(router, http.MethodDelete, "/delete", map[string]interface{}{"id": user.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteUser_RestrictedWhenProfileExists(t *testing.T) {
	router, db := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice", "password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)

	w = performRequest(router, http.MethodPost, "/profile", map[string]interface{}{
		"email": "alice@example.com", "address": "1 Example Street",
		"phone": "+1 555 0100", "userId": user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// 有资料引用时拒绝删除，用户与资料都保留
	w = performRequest(router, http.MethodDelete, "/delete", map[string]interface{}{"id": user.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&model.Profile{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListUsers_NestedPostTitles(t *testing.T) {
	router, db := setupTestAPI(t)

	w := performRequest(router, http.MethodPost, "/user", map[string]interface{}{
		"username": "alice", "password": "supersecret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = performRequest(router, http.MethodPost, "/category", map[string]interface{}{"name": "golang"})
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	w = performRequest(router, http.MethodPost, "/insert-post", map[string]interface{}{
		"title": "Hello", "authorId": user.ID, "categoryId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodGet, "/get-user", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]interface{}
	e := decode(t, w)
	require.NoError(t, json.Unmarshal(e.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0]["username"])
	posts := list[0]["posts"].([]interface{})
	require.Len(t, posts, 1)
	post := posts[0].(map[string]interface{})
	assert.Equal(t, "Hello", post["title"])
	assert.NotZero(t, post["id"])
	// 摘要只含id与标题
	assert.NotContains(t, post, "content")
}
