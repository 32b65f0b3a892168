package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsv2dynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsv2types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	awsv2xray "github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/aws/aws-xray-sdk-go/xray"

	"rbac-admin/internal/domain"
)

// Client wraps a DynamoDB table holding both collections in a single-table
// layout. Sort keys are zero-padded ids so that Query returns records in
// creation order, matching the in-memory store's listing contract.
type Client struct {
	db        *awsv2dynamodb.Client
	tableName string
}

func NewClient(ctx context.Context, region, tableName string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	awsv2xray.AWSV2Instrumentor(&cfg.APIOptions)
	client := awsv2dynamodb.NewFromConfig(cfg)
	return &Client{db: client, tableName: tableName}, nil
}

const (
	usersPK = "USERS"
	rolesPK = "ROLES"
)

func userSK(id int64) string { return fmt.Sprintf("USER#%020d", id) }
func roleSK(id int64) string { return fmt.Sprintf("ROLE#%020d", id) }

type UserRepository struct{ client *Client }

type RoleRepository struct{ client *Client }

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func NewRoleRepository(client *Client) *RoleRepository {
	return &RoleRepository{client: client}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var out *awsv2dynamodb.QueryOutput
	err := xray.Capture(ctx, "DynamoDB.QueryUsers", func(ctx context.Context) error {
		var e error
		out, e = r.client.db.Query(ctx, &awsv2dynamodb.QueryInput{
			TableName:              aws.String(r.client.tableName),
			KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
			ExpressionAttributeValues: map[string]awsv2types.AttributeValue{
				":pk": &awsv2types.AttributeValueMemberS{Value: usersPK},
				":sk": &awsv2types.AttributeValueMemberS{Value: "USER#"},
			},
		})
		return e
	})
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(out.Items))
	for _, item := range out.Items {
		raw := struct {
			ID     int64  `dynamodbav:"ID"`
			Name   string `dynamodbav:"Name"`
			Email  string `dynamodbav:"Email"`
			Role   string `dynamodbav:"Role"`
			Status string `dynamodbav:"Status"`
		}{}
		if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
			return nil, err
		}
		users = append(users, domain.User{ID: raw.ID, Name: raw.Name, Email: raw.Email, Role: raw.Role, Status: domain.Status(raw.Status)})
	}
	return users, nil
}

func (r *UserRepository) Put(ctx context.Context, user domain.User) error {
	item := map[string]any{
		"PK":         usersPK,
		"SK":         userSK(user.ID),
		"EntityType": "USER",
		"ID":         user.ID,
		"Name":       user.Name,
		"Email":      user.Email,
		"Role":       user.Role,
		"Status":     string(user.Status),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	return xray.Capture(ctx, "DynamoDB.PutUser", func(ctx context.Context) error {
		_, err = r.client.db.PutItem(ctx, &awsv2dynamodb.PutItemInput{
			TableName: aws.String(r.client.tableName),
			Item:      av,
		})
		return err
	})
}

func (r *UserRepository) Remove(ctx context.Context, id int64) error {
	return xray.Capture(ctx, "DynamoDB.DeleteUser", func(ctx context.Context) error {
		_, err := r.client.db.DeleteItem(ctx, &awsv2dynamodb.DeleteItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: usersPK},
				"SK": &awsv2types.AttributeValueMemberS{Value: userSK(id)},
			},
		})
		return err
	})
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	var out *awsv2dynamodb.QueryOutput
	err := xray.Capture(ctx, "DynamoDB.QueryRoles", func(ctx context.Context) error {
		var e error
		out, e = r.client.db.Query(ctx, &awsv2dynamodb.QueryInput{
			TableName:              aws.String(r.client.tableName),
			KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
			ExpressionAttributeValues: map[string]awsv2types.AttributeValue{
				":pk": &awsv2types.AttributeValueMemberS{Value: rolesPK},
				":sk": &awsv2types.AttributeValueMemberS{Value: "ROLE#"},
			},
		})
		return e
	})
	if err != nil {
		return nil, err
	}
	roles := make([]domain.Role, 0, len(out.Items))
	for _, item := range out.Items {
		raw := struct {
			ID          int64    `dynamodbav:"ID"`
			Name        string   `dynamodbav:"Name"`
			Permissions []string `dynamodbav:"Permissions"`
		}{}
		if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
			return nil, err
		}
		perms := make([]domain.Permission, 0, len(raw.Permissions))
		for _, p := range raw.Permissions {
			perms = append(perms, domain.Permission(p))
		}
		roles = append(roles, domain.Role{ID: raw.ID, Name: raw.Name, Permissions: perms})
	}
	return roles, nil
}

func (r *RoleRepository) Put(ctx context.Context, role domain.Role) error {
	perms := make([]string, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		perms = append(perms, string(p))
	}
	item := map[string]any{
		"PK":          rolesPK,
		"SK":          roleSK(role.ID),
		"EntityType":  "ROLE",
		"ID":          role.ID,
		"Name":        role.Name,
		"Permissions": perms,
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	return xray.Capture(ctx, "DynamoDB.PutRole", func(ctx context.Context) error {
		_, err = r.client.db.PutItem(ctx, &awsv2dynamodb.PutItemInput{
			TableName: aws.String(r.client.tableName),
			Item:      av,
		})
		return err
	})
}

func (r *RoleRepository) Remove(ctx context.Context, id int64) error {
	return xray.Capture(ctx, "DynamoDB.DeleteRole", func(ctx context.Context) error {
		_, err := r.client.db.DeleteItem(ctx, &awsv2dynamodb.DeleteItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: rolesPK},
				"SK": &awsv2types.AttributeValueMemberS{Value: roleSK(id)},
			},
		})
		return err
	})
}
