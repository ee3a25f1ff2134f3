// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/aws2openapi/awsmodel"
)

// QueryService is a query-protocol description in the shape of SQS: queue
// operations take a QueueUrl, attributes are a map and errors carry a status.
const QueryService = `{
  "version": "2.0",
  "metadata": {
    "apiVersion": "2012-11-05",
    "endpointPrefix": "sqs",
    "protocol": "query",
    "serviceAbbreviation": "Amazon SQS",
    "serviceFullName": "Amazon Simple Queue Service",
    "signatureVersion": "v4",
    "xmlNamespace": "http://queue.amazonaws.com/doc/2012-11-05/"
  },
  "documentation": "<p>Welcome to the <i>Amazon SQS API Reference</i>.</p>",
  "operations": {
    "ListQueues": {
      "name": "ListQueues",
      "http": {"method": "POST", "requestUri": "/"},
      "input": {"shape": "ListQueuesRequest"},
      "output": {"shape": "ListQueuesResult", "resultWrapper": "ListQueuesResult"},
      "documentation": "<p>Returns a list of your queues.</p>"
    },
    "GetQueueAttributes": {
      "name": "GetQueueAttributes",
      "http": {"method": "POST", "requestUri": "/"},
      "input": {"shape": "GetQueueAttributesRequest"},
      "output": {"shape": "GetQueueAttributesResult"},
      "errors": [{"shape": "InvalidAttributeName"}]
    },
    "SetQueueAttributes": {
      "name": "SetQueueAttributes",
      "http": {"method": "POST", "requestUri": "/"},
      "input": {"shape": "SetQueueAttributesRequest"}
    }
  },
  "shapes": {
    "ListQueuesRequest": {
      "type": "structure",
      "members": {
        "QueueNamePrefix": {"shape": "String", "documentation": "<p>A string to filter by.</p>"}
      }
    },
    "ListQueuesResult": {
      "type": "structure",
      "members": {
        "QueueUrls": {"shape": "QueueUrlList"}
      }
    },
    "QueueUrlList": {
      "type": "list",
      "member": {"shape": "String", "locationName": "QueueUrl"},
      "flattened": true
    },
    "GetQueueAttributesRequest": {
      "type": "structure",
      "required": ["QueueUrl"],
      "members": {
        "QueueUrl": {"shape": "String"},
        "AttributeNames": {"shape": "AttributeNameList"}
      }
    },
    "GetQueueAttributesResult": {
      "type": "structure",
      "members": {
        "Attributes": {"shape": "QueueAttributeMap", "locationName": "Attribute"}
      }
    },
    "SetQueueAttributesRequest": {
      "type": "structure",
      "required": ["QueueUrl", "Attributes"],
      "members": {
        "QueueUrl": {"shape": "String"},
        "Attributes": {"shape": "QueueAttributeMap", "locationName": "Attribute"}
      }
    },
    "AttributeNameList": {
      "type": "list",
      "member": {"shape": "String", "locationName": "AttributeName"},
      "flattened": true
    },
    "QueueAttributeMap": {
      "type": "map",
      "key": {"shape": "String", "locationName": "Name"},
      "value": {"shape": "String", "locationName": "Value"},
      "flattened": true
    },
    "InvalidAttributeName": {
      "type": "structure",
      "members": {},
      "documentation": "<p>The specified attribute doesn't exist.</p>",
      "error": {"code": "InvalidAttributeName", "httpStatusCode": 400, "senderFault": true},
      "exception": true
    },
    "String": {"type": "string"}
  }
}`

// JSONService is a json-protocol description with bounded and patterned
// scalars, a deprecated operation and errors without a declared status.
const JSONService = `{
  "version": "2.0",
  "metadata": {
    "apiVersion": "2012-08-10",
    "endpointPrefix": "dynamodb",
    "jsonVersion": "1.0",
    "protocol": "json",
    "serviceAbbreviation": "DynamoDB",
    "serviceFullName": "Amazon DynamoDB",
    "signatureVersion": "v4",
    "targetPrefix": "DynamoDB_20120810"
  },
  "operations": {
    "DescribeTable": {
      "name": "DescribeTable",
      "http": {"method": "POST", "requestUri": "/"},
      "input": {"shape": "DescribeTableInput"},
      "output": {"shape": "DescribeTableOutput"},
      "errors": [
        {"shape": "ResourceNotFoundException"},
        {"shape": "InternalServerError", "exception": true, "fault": true}
      ],
      "documentation": "<p>Returns information about the table.</p>"
    },
    "ListTables": {
      "name": "ListTables",
      "http": {"method": "POST", "requestUri": "/"},
      "input": {"shape": "ListTablesInput"},
      "output": {"shape": "ListTablesOutput"},
      "deprecated": true,
      "deprecatedMessage": "Use ListTablesV2"
    }
  },
  "shapes": {
    "DescribeTableInput": {
      "type": "structure",
      "required": ["TableName"],
      "members": {
        "TableName": {"shape": "TableName"}
      }
    },
    "DescribeTableOutput": {
      "type": "structure",
      "members": {
        "ItemCount": {"shape": "Long"},
        "SizeRatio": {"shape": "Double"},
        "Created": {"shape": "Date"},
        "Status": {"shape": "TableStatus"}
      }
    },
    "ListTablesInput": {
      "type": "structure",
      "members": {
        "Limit": {"shape": "ListTablesInputLimit"},
        "ExclusiveStartTableName": {"shape": "TableName"}
      }
    },
    "ListTablesOutput": {
      "type": "structure",
      "members": {
        "TableNames": {"shape": "TableNameList"}
      }
    },
    "TableNameList": {"type": "list", "member": {"shape": "TableName"}, "max": 100},
    "TableName": {"type": "string", "max": 255, "min": 3, "pattern": "[a-zA-Z0-9_.-]+"},
    "ListTablesInputLimit": {"type": "integer", "max": 100, "min": 1},
    "Long": {"type": "long"},
    "Double": {"type": "double"},
    "Date": {"type": "timestamp"},
    "TableStatus": {"type": "string", "enum": ["CREATING", "ACTIVE", "DELETING"]},
    "ResourceNotFoundException": {
      "type": "structure",
      "members": {"message": {"shape": "ErrorMessage"}},
      "exception": true
    },
    "InternalServerError": {
      "type": "structure",
      "members": {"message": {"shape": "ErrorMessage"}},
      "exception": true,
      "fault": true
    },
    "ErrorMessage": {"type": "string"}
  }
}`

// RESTXMLService is a rest-xml description in the shape of S3: greedy keys,
// literal query strings in request URIs, header members and a payload.
const RESTXMLService = `{
  "version": "2.0",
  "metadata": {
    "apiVersion": "2006-03-01",
    "endpointPrefix": "s3",
    "globalEndpoint": "s3.amazonaws.com",
    "protocol": "rest-xml",
    "serviceAbbreviation": "Amazon S3",
    "serviceFullName": "Amazon Simple Storage Service",
    "signatureVersion": "s3"
  },
  "operations": {
    "GetObject": {
      "name": "GetObject",
      "http": {"method": "GET", "requestUri": "/{Bucket}/{Key+}"},
      "input": {"shape": "GetObjectRequest"},
      "output": {"shape": "GetObjectOutput"},
      "errors": [{"shape": "NoSuchKey"}],
      "documentationUrl": "http://docs.amazonwebservices.com/AmazonS3/latest/API/RESTObjectGET.html"
    },
    "PutObject": {
      "name": "PutObject",
      "http": {"method": "PUT", "requestUri": "/{Bucket}/{Key+}"},
      "input": {"shape": "PutObjectRequest"},
      "output": {"shape": "PutObjectOutput"}
    },
    "GetBucketVersioning": {
      "name": "GetBucketVersioning",
      "http": {"method": "GET", "requestUri": "/{Bucket}?versioning"},
      "input": {"shape": "GetBucketVersioningRequest"},
      "output": {"shape": "GetBucketVersioningOutput"}
    },
    "ListObjectsV2": {
      "name": "ListObjectsV2",
      "http": {"method": "GET", "requestUri": "/{Bucket}?list-type=2"},
      "input": {"shape": "ListObjectsV2Request"},
      "output": {"shape": "ListObjectsV2Output"}
    }
  },
  "shapes": {
    "GetObjectRequest": {
      "type": "structure",
      "required": ["Bucket", "Key"],
      "members": {
        "Bucket": {"shape": "BucketName", "location": "uri", "locationName": "Bucket"},
        "Key": {"shape": "ObjectKey", "location": "uri", "locationName": "Key"},
        "Range": {"shape": "Range", "location": "header", "locationName": "Range"},
        "VersionId": {"shape": "ObjectVersionId", "location": "querystring", "locationName": "versionId"}
      }
    },
    "GetObjectOutput": {
      "type": "structure",
      "members": {
        "Body": {"shape": "Body", "streaming": true},
        "ETag": {"shape": "ETag", "location": "header", "locationName": "ETag"}
      },
      "payload": "Body"
    },
    "PutObjectRequest": {
      "type": "structure",
      "required": ["Bucket", "Key"],
      "members": {
        "Body": {"shape": "Body", "streaming": true},
        "Bucket": {"shape": "BucketName", "location": "uri", "locationName": "Bucket"},
        "Key": {"shape": "ObjectKey", "location": "uri", "locationName": "Key"},
        "Metadata": {"shape": "Metadata", "location": "headers", "locationName": "x-amz-meta-"}
      },
      "payload": "Body"
    },
    "PutObjectOutput": {
      "type": "structure",
      "members": {
        "ETag": {"shape": "ETag", "location": "header", "locationName": "ETag"}
      }
    },
    "GetBucketVersioningRequest": {
      "type": "structure",
      "required": ["Bucket"],
      "members": {
        "Bucket": {"shape": "BucketName", "location": "uri", "locationName": "Bucket"}
      }
    },
    "GetBucketVersioningOutput": {
      "type": "structure",
      "members": {
        "Status": {"shape": "BucketVersioningStatus"}
      }
    },
    "ListObjectsV2Request": {
      "type": "structure",
      "required": ["Bucket"],
      "members": {
        "Bucket": {"shape": "BucketName", "location": "uri", "locationName": "Bucket"},
        "MaxKeys": {"shape": "MaxKeys", "location": "querystring", "locationName": "max-keys"},
        "ContinuationToken": {"shape": "Token", "location": "querystring", "locationName": "continuation-token"}
      }
    },
    "ListObjectsV2Output": {
      "type": "structure",
      "members": {
        "Contents": {"shape": "ObjectList"},
        "NextContinuationToken": {"shape": "Token"}
      }
    },
    "ObjectList": {"type": "list", "member": {"shape": "Object"}, "flattened": true},
    "Object": {
      "type": "structure",
      "members": {
        "Key": {"shape": "ObjectKey"},
        "Size": {"shape": "Size"}
      }
    },
    "NoSuchKey": {"type": "structure", "members": {}, "exception": true},
    "BucketName": {"type": "string"},
    "ObjectKey": {"type": "string", "min": 1},
    "Range": {"type": "string"},
    "ObjectVersionId": {"type": "string"},
    "ETag": {"type": "string"},
    "Body": {"type": "blob"},
    "Metadata": {"type": "map", "key": {"shape": "MetadataKey"}, "value": {"shape": "MetadataValue"}},
    "MetadataKey": {"type": "string"},
    "MetadataValue": {"type": "string"},
    "BucketVersioningStatus": {"type": "string", "enum": ["Enabled", "Suspended"]},
    "MaxKeys": {"type": "integer"},
    "Token": {"type": "string"},
    "Size": {"type": "integer"}
  }
}`

// RESTJSONService is a rest-json description in the shape of the MediaStore
// data plane, including the GetObjectResponse that needs patching.
const RESTJSONService = `{
  "version": "2.0",
  "metadata": {
    "apiVersion": "2017-09-01",
    "endpointPrefix": "data.mediastore",
    "protocol": "rest-json",
    "serviceAbbreviation": "MediaStore Data",
    "serviceFullName": "AWS Elemental MediaStore Data Plane",
    "signatureVersion": "v4",
    "signingName": "mediastore"
  },
  "operations": {
    "GetObject": {
      "name": "GetObject",
      "http": {"method": "GET", "requestUri": "/{Path+}", "responseCode": 200},
      "input": {"shape": "GetObjectRequest"},
      "output": {"shape": "GetObjectResponse"},
      "errors": [
        {"shape": "ObjectNotFoundException"},
        {"shape": "RequestedRangeNotSatisfiableException"}
      ]
    },
    "ListItems": {
      "name": "ListItems",
      "http": {"method": "GET", "requestUri": "/"},
      "input": {"shape": "ListItemsRequest"},
      "output": {"shape": "ListItemsResponse"}
    },
    "DescribeObject": {
      "name": "DescribeObject",
      "http": {"method": "HEAD", "requestUri": "/{Path+}"},
      "input": {"shape": "DescribeObjectRequest"},
      "output": {"shape": "DescribeObjectResponse"}
    },
    "PutObject": {
      "name": "PutObject",
      "http": {"method": "PUT", "requestUri": "/{Path+}"},
      "input": {"shape": "PutObjectRequest"},
      "output": {"shape": "PutObjectResponse"}
    }
  },
  "shapes": {
    "GetObjectRequest": {
      "type": "structure",
      "required": ["Path"],
      "members": {
        "Path": {"shape": "PathNaming", "location": "uri", "locationName": "Path"},
        "Range": {"shape": "RangePattern", "location": "header", "locationName": "Range"}
      }
    },
    "GetObjectResponse": {
      "type": "structure",
      "required": ["Body", "StatusCode"],
      "members": {
        "Body": {"shape": "PayloadBlob"},
        "ContentLength": {"shape": "NonNegativeLong", "location": "header", "locationName": "Content-Length"},
        "StatusCode": {"shape": "StatusCode", "location": "statusCode"}
      },
      "payload": "Body"
    },
    "ListItemsRequest": {
      "type": "structure",
      "members": {
        "Path": {"shape": "ListPathNaming", "location": "querystring", "locationName": "Path"},
        "MaxResults": {"shape": "ListLimit", "location": "querystring", "locationName": "MaxResults"},
        "NextToken": {"shape": "PaginationToken", "location": "querystring", "locationName": "NextToken"}
      }
    },
    "ListItemsResponse": {
      "type": "structure",
      "members": {
        "Items": {"shape": "ItemList"},
        "NextToken": {"shape": "PaginationToken"}
      }
    },
    "DescribeObjectRequest": {
      "type": "structure",
      "required": ["Path"],
      "members": {
        "Path": {"shape": "PathNaming", "location": "uri", "locationName": "Path"}
      }
    },
    "DescribeObjectResponse": {
      "type": "structure",
      "members": {
        "ETag": {"shape": "ETag", "location": "header", "locationName": "ETag"}
      }
    },
    "PutObjectRequest": {
      "type": "structure",
      "required": ["Body", "Path"],
      "members": {
        "Body": {"shape": "PayloadBlob"},
        "Path": {"shape": "PathNaming", "location": "uri", "locationName": "Path"},
        "ContentType": {"shape": "ContentType", "location": "header", "locationName": "Content-Type"},
        "StorageClass": {"shape": "StorageClass", "location": "header", "locationName": "x-amz-storage-class"}
      }
    },
    "PutObjectResponse": {
      "type": "structure",
      "members": {
        "ETag": {"shape": "ETag"}
      }
    },
    "ItemList": {"type": "list", "member": {"shape": "Item"}},
    "Item": {
      "type": "structure",
      "members": {
        "Name": {"shape": "ItemName"},
        "LastModified": {"shape": "TimeStamp"}
      }
    },
    "ObjectNotFoundException": {
      "type": "structure",
      "members": {"Message": {"shape": "ErrorMessage"}},
      "documentation": "<p>Could not perform an operation on an object that does not exist.</p>",
      "error": {"httpStatusCode": 404},
      "exception": true
    },
    "RequestedRangeNotSatisfiableException": {
      "type": "structure",
      "members": {"Message": {"shape": "ErrorMessage"}},
      "error": {"httpStatusCode": 416},
      "exception": true
    },
    "PathNaming": {"type": "string", "max": 900, "min": 1, "pattern": "(?:[A-Za-z0-9_\\.\\-\\~]+/){0,10}[A-Za-z0-9_\\.\\-\\~]+"},
    "ListPathNaming": {"type": "string", "max": 900, "min": 0, "pattern": "/?(?:[A-Za-z0-9_\\.\\-\\~]+/){0,10}(?:[A-Za-z0-9_\\.\\-\\~]+)?"},
    "RangePattern": {"type": "string", "pattern": "^bytes=(?:\\d+\\-\\d*|\\d*\\-\\d+)$"},
    "ListLimit": {"type": "integer", "max": 1000, "min": 1},
    "PaginationToken": {"type": "string"},
    "NonNegativeLong": {"type": "long", "min": 0},
    "StatusCode": {"type": "integer"},
    "PayloadBlob": {"type": "blob", "streaming": true},
    "ETag": {"type": "string", "max": 64, "min": 1, "pattern": "([0-9A-Fa-f]+)"},
    "ContentType": {"type": "string", "pattern": "^[\\w\\-\\/\\.\\+]{1,255}$"},
    "StorageClass": {"type": "string", "enum": ["TEMPORAL"]},
    "ItemName": {"type": "string"},
    "TimeStamp": {"type": "timestamp"},
    "ErrorMessage": {"type": "string", "pattern": "[ \\w:\\.\\?-]+"}
  }
}`

// EC2Service is a small ec2-protocol description.
const EC2Service = `{
  "version": "2.0",
  "metadata": {
    "apiVersion": "2016-11-15",
    "endpointPrefix": "ec2",
    "protocol": "ec2",
    "serviceAbbreviation": "Amazon EC2",
    "serviceFullName": "Amazon Elastic Compute Cloud",
    "signatureVersion": "v4",
    "xmlNamespace": "http://ec2.amazonaws.com/doc/2016-11-15"
  },
  "operations": {
    "DescribeRegions": {
      "name": "DescribeRegions",
      "http": {"method": "POST", "requestUri": "/"},
      "input": {"shape": "DescribeRegionsRequest"},
      "output": {"shape": "DescribeRegionsResult"}
    }
  },
  "shapes": {
    "DescribeRegionsRequest": {
      "type": "structure",
      "members": {
        "RegionNames": {"shape": "RegionNameStringList", "locationName": "RegionName"},
        "DryRun": {"shape": "Boolean", "locationName": "dryRun"},
        "AllRegions": {"shape": "Boolean", "queryName": "AllRegions"}
      }
    },
    "DescribeRegionsResult": {
      "type": "structure",
      "members": {
        "Regions": {"shape": "RegionList", "locationName": "regionInfo"}
      }
    },
    "RegionNameStringList": {"type": "list", "member": {"shape": "String", "locationName": "RegionName"}},
    "RegionList": {"type": "list", "member": {"shape": "Region", "locationName": "item"}},
    "Region": {
      "type": "structure",
      "members": {
        "RegionName": {"shape": "String", "locationName": "regionName"}
      }
    },
    "Boolean": {"type": "boolean"},
    "String": {"type": "string"}
  }
}`

// ParseService decodes one of the fixtures, failing the test on error.
func ParseService(t *testing.T, src string) *awsmodel.ServiceDescription {
	t.Helper()

	desc, err := awsmodel.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Failed to parse service description: %v", err)
	}
	return desc
}

// WriteService writes a fixture to a temporary file named filename and
// returns its path.
func WriteService(t *testing.T, filename, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), filename)
	if err := os.WriteFile(path, []byte(src), 0600); err != nil {
		t.Fatalf("Failed to write temporary service description: %v", err)
	}
	return path
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
